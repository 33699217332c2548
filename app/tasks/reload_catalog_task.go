package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/newsroom/newsdesk/app/news"
)

// ReloadCatalogTask re-reads the fixture directory and rebuilds the
// catalog. Enqueued on demand via the admin API.
type ReloadCatalogTask struct {
	Task
	catalog *news.Catalog
}

func NewReloadCatalogTask(catalog *news.Catalog) *ReloadCatalogTask {
	return &ReloadCatalogTask{
		Task:    NewTask(TaskTypeReloadCatalog),
		catalog: catalog,
	}
}

func (t *ReloadCatalogTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := t.catalog.Run(); err != nil {
		slog.Error("Task failed", "type", "ReloadCatalog", "error", err)
		return fmt.Errorf("failed to reload catalog: %w", err)
	}

	slog.Info("Task completed",
		"type", "ReloadCatalog",
		"articles", t.catalog.Count(),
		"duration", t.GetDuration())

	return nil
}
