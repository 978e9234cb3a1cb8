package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/L0dyv/litepad/internal/client/events"
	"github.com/L0dyv/litepad/internal/client/storage"
	"github.com/L0dyv/litepad/internal/client/sync"
	"github.com/L0dyv/litepad/internal/models"
	"github.com/L0dyv/litepad/internal/reconcile"
)

func (c *Cli) runSync(ctx context.Context) error {
	fmt.Println("Synchronizing...")

	summary, err := c.syncService.Sync(ctx)
	if err != nil {
		if errors.Is(err, sync.ErrSyncDisabled) {
			return fmt.Errorf("sync is disabled: run 'litepad login' first")
		}
		return err
	}

	fmt.Printf("Pushed:    %d\n", summary.Pushed)
	fmt.Printf("Accepted:  %d\n", summary.Accepted)
	fmt.Printf("Applied:   %d\n", summary.Applied)
	if summary.Conflicts > 0 {
		fmt.Printf("Conflicts: %d (kept local copies, see relay versions via 'litepad sync' after resolving)\n", summary.Conflicts)
	}

	uploaded, err := c.attachService.Upload(ctx)
	if err != nil {
		fmt.Printf("Warning: attachment upload failed: %v\n", err)
	} else if uploaded > 0 {
		fmt.Printf("Uploaded:  %d attachment(s)\n", uploaded)
	}

	downloaded, err := c.attachService.Download(ctx)
	if err != nil {
		fmt.Printf("Warning: attachment download failed: %v\n", err)
	} else if downloaded > 0 {
		fmt.Printf("Fetched:   %d attachment(s)\n", downloaded)
	}

	return nil
}

func (c *Cli) runAttach(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: litepad attach <id> <file>")
	}
	id, path := args[0], args[1]

	doc, err := c.docs.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			return fmt.Errorf("page %s not found", id)
		}
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	filename := filepath.Base(path)
	mimeType := mime.TypeByExtension(filepath.Ext(filename))

	att, locator, err := c.attachService.Add(ctx, filename, mimeType, data)
	if err != nil {
		return fmt.Errorf("failed to add attachment: %w", err)
	}

	// Ссылка дописывается в тело страницы: именно по ней Download
	// находит вложения, которых нет на устройстве
	body := doc.Body
	if body != "" {
		body += "\n"
	}
	body += locator
	if err := c.docs.UpdateDocument(ctx, id, doc.Title, body); err != nil {
		return fmt.Errorf("failed to link attachment: %w", err)
	}

	fmt.Printf("Attached %s (%d bytes) as %s\n", filename, att.ByteSize, locator)
	return nil
}

func (c *Cli) runWatch(ctx context.Context) error {
	cancelState := c.bus.SubscribeState(func(state events.ConnectionState) {
		fmt.Printf("[%s] connection: %s\n", time.Now().Format(time.TimeOnly), state)
	})
	defer cancelState()

	cancelChanges := c.bus.SubscribeRemoteChange(func(doc models.RelayDocument) {
		fmt.Printf("[%s] updated: %s\n", time.Now().Format(time.TimeOnly), doc.ID)
	})
	defer cancelChanges()

	cancelConflicts := c.bus.SubscribeConflict(func(conflict reconcile.Conflict) {
		fmt.Printf("[%s] conflict: %s (local and relay copies diverged)\n",
			time.Now().Format(time.TimeOnly), conflict.Local.ID)
	})
	defer cancelConflicts()

	fmt.Println("Watching for changes, press Ctrl+C to stop...")
	c.channel.Connect(ctx)
	defer c.channel.Disconnect()

	<-ctx.Done()
	fmt.Println()
	fmt.Println("Stopped.")
	return nil
}
