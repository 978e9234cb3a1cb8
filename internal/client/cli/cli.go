// Package cli реализует команды консольного клиента litepad.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/L0dyv/litepad/internal/client/attachments"
	"github.com/L0dyv/litepad/internal/client/auth"
	"github.com/L0dyv/litepad/internal/client/events"
	"github.com/L0dyv/litepad/internal/client/realtime"
	"github.com/L0dyv/litepad/internal/client/storage"
	"github.com/L0dyv/litepad/internal/client/sync"
)

// Cli связывает команды с сервисами клиента
type Cli struct {
	authService   *auth.Service
	syncService   sync.Service
	attachService *attachments.Service
	channel       *realtime.Channel
	docs          storage.DocumentStorage
	sessions      storage.SessionStorage
	bus           *events.Bus
}

// New создает CLI поверх собранных сервисов
func New(
	authService *auth.Service,
	syncService sync.Service,
	attachService *attachments.Service,
	channel *realtime.Channel,
	docs storage.DocumentStorage,
	sessions storage.SessionStorage,
	bus *events.Bus,
) *Cli {
	return &Cli{
		authService:   authService,
		syncService:   syncService,
		attachService: attachService,
		channel:       channel,
		docs:          docs,
		sessions:      sessions,
		bus:           bus,
	}
}

// Run выполняет команду. Возвращаемая ошибка предназначена для вывода
// пользователю.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "add":
		return c.runAdd(ctx, args)
	case "edit":
		return c.runEdit(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "list":
		return c.runList(ctx)
	case "get":
		return c.runGet(ctx, args)
	case "attach":
		return c.runAttach(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "watch":
		return c.runWatch(ctx)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage печатает справку по командам
func PrintUsage() {
	fmt.Println("Usage: litepad [flags] <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register              Create a new account")
	fmt.Println("  login                 Sign in and enable sync")
	fmt.Println("  logout                Sign out on this device")
	fmt.Println("  status                Show session and sync state")
	fmt.Println("  add <title> [body]    Create a page")
	fmt.Println("  edit <id> <title> [body]  Replace page content")
	fmt.Println("  delete <id>           Delete a page")
	fmt.Println("  list                  List pages")
	fmt.Println("  get <id>              Print a page")
	fmt.Println("  attach <id> <file>    Attach a file to a page")
	fmt.Println("  sync                  Run one sync cycle")
	fmt.Println("  watch                 Keep a realtime channel open")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  litepad add \"Shopping\" \"milk, eggs\"")
	fmt.Println("  litepad --server https://relay.example.com login")
}

// readInput читает строку из stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword читает пароль без отображения на экране
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}
