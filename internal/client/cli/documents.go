package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/L0dyv/litepad/internal/client/storage"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: litepad add <title> [body]")
	}
	title := args[0]
	body := strings.Join(args[1:], " ")

	doc, err := c.docs.CreateDocument(ctx, uuid.New().String(), title, body)
	if err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}

	fmt.Printf("Created page %s\n", doc.ID)
	return nil
}

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: litepad edit <id> <title> [body]")
	}
	id := args[0]
	title := args[1]
	body := strings.Join(args[2:], " ")

	// Update по несуществующему id — no-op, явная проверка дает
	// понятную ошибку
	if _, err := c.docs.GetDocument(ctx, id); err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			return fmt.Errorf("page %s not found", id)
		}
		return err
	}

	if err := c.docs.UpdateDocument(ctx, id, title, body); err != nil {
		return fmt.Errorf("failed to update page: %w", err)
	}

	fmt.Printf("Updated page %s\n", id)
	return nil
}

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: litepad delete <id>")
	}

	if err := c.docs.SoftDeleteDocument(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}

	fmt.Printf("Deleted page %s\n", args[0])
	return nil
}

func (c *Cli) runList(ctx context.Context) error {
	docs, err := c.docs.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pages: %w", err)
	}

	shown := 0
	for _, doc := range docs {
		if doc.Deleted {
			continue
		}
		state := "synced"
		if doc.HasLocalChanges() {
			state = "pending"
		}
		fmt.Printf("%s  v%-3d %-8s %s  %s\n",
			doc.ID,
			doc.LocalVersion,
			state,
			doc.UpdatedAt.Format(time.RFC3339),
			doc.Title)
		shown++
	}

	if shown == 0 {
		fmt.Println("No pages yet. Run 'litepad add <title>' to create one.")
	}
	return nil
}

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: litepad get <id>")
	}

	doc, err := c.docs.GetDocument(ctx, args[0])
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			return fmt.Errorf("page %s not found", args[0])
		}
		return err
	}
	if doc.Deleted {
		return fmt.Errorf("page %s is deleted", args[0])
	}

	fmt.Printf("# %s\n", doc.Title)
	fmt.Println()
	fmt.Println(doc.Body)
	return nil
}
