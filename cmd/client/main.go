package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/L0dyv/litepad/internal/client/api"
	"github.com/L0dyv/litepad/internal/client/attachments"
	"github.com/L0dyv/litepad/internal/client/auth"
	"github.com/L0dyv/litepad/internal/client/cli"
	"github.com/L0dyv/litepad/internal/client/events"
	"github.com/L0dyv/litepad/internal/client/realtime"
	"github.com/L0dyv/litepad/internal/client/storage/boltdb"
	"github.com/L0dyv/litepad/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Relay server URL")
	dbPath := flag.String("db", "litepad.db", "Path to local database")
	filesDir := flag.String("files", "litepad-files", "Directory for attachment blobs")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	level := slog.LevelWarn
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Команда watch живет до Ctrl+C, остальные завершаются сами
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	files, err := attachments.NewFileStore(*filesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open files directory: %v\n", err)
		os.Exit(1)
	}

	// Собираем сервисы поверх общего API клиента и шины событий
	apiClient := api.NewClient(*serverURL)
	bus := events.NewBus()

	authService := auth.NewService(apiClient, boltStorage, boltStorage, *serverURL)
	syncService := sync.NewService(apiClient, authService, boltStorage, boltStorage, bus, logger)
	attachService := attachments.NewService(apiClient, authService, boltStorage, boltStorage, files, logger)
	channel := realtime.NewChannel(wsURL(*serverURL), authService, syncService, boltStorage, boltStorage, bus, logger)

	c := cli.New(authService, syncService, attachService, channel, boltStorage, boltStorage, bus)

	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// wsURL выводит адрес websocket-канала из базового URL сервера
func wsURL(serverURL string) string {
	u := serverURL
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	return strings.TrimSuffix(u, "/") + "/api/v1/ws"
}

func printVersion() {
	fmt.Printf("litepad version %s\n", Version)
	fmt.Printf("Build date: %s\n", BuildDate)
	fmt.Printf("Git commit: %s\n", GitCommit)
}
