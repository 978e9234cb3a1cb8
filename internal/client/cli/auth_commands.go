package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runRegister(ctx context.Context) error {
	fmt.Println("=== Registration ===")
	fmt.Println()

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := readPassword("Password (min 8 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("Registering...")

	resp, err := c.authService.Register(ctx, username, password)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Registration successful!")
	fmt.Printf("User ID: %s\n", resp.UserID)
	fmt.Println()
	fmt.Println("Run 'litepad login' to sign in and enable sync.")
	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	fmt.Println("=== Login ===")
	fmt.Println()

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()
	fmt.Println("Authenticating...")

	if err := c.authService.Login(ctx, username, password); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Login successful, sync enabled.")
	fmt.Println("Run 'litepad sync' or 'litepad watch' to synchronize.")
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Signed out. Local pages are kept on this device.")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	fmt.Println("=== Status ===")
	fmt.Println()

	isAuth, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}
	if !isAuth {
		fmt.Println("Not authenticated. Run 'litepad login' to enable sync.")
		return nil
	}

	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	fmt.Printf("Account:   %s\n", session.AccountID)
	fmt.Printf("Device:    %s\n", session.DeviceID)
	fmt.Printf("Relay:     %s\n", session.RelayURL)
	if session.LastSyncAt != nil {
		fmt.Printf("Last sync: %s\n", session.LastSyncAt.Format(time.RFC3339))
	} else {
		fmt.Println("Last sync: never")
	}

	pending, err := c.syncService.PendingCount(ctx)
	if err != nil {
		fmt.Printf("Warning: failed to count pending pages: %v\n", err)
		return nil
	}
	if pending > 0 {
		fmt.Printf("Pending:   %d page(s) waiting to be synchronized\n", pending)
	} else {
		fmt.Println("Pending:   everything is synchronized")
	}
	return nil
}
