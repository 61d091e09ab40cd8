// Package remove implements the best-effort blob deletion utility.
package remove

import (
	"context"
	"log/slog"

	"blobtidy/internal/storage"
)

// Run deletes every named blob from the container. Per-item failures are
// logged and never stop the loop: every name is attempted regardless of what
// happened before it. Returns the number of failed deletions.
func Run(ctx context.Context, d storage.Deleter, container string, names []string, log *slog.Logger) int {
	failed := 0
	for _, name := range names {
		if err := d.Delete(ctx, container, name); err != nil {
			log.Error("delete blob", "container", container, "name", name, "error", err)
			failed++
			continue
		}
		log.Info("deleted blob", "container", container, "name", name)
	}
	return failed
}
