package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/newsroom/newsdesk/app/assistant"
	"github.com/newsroom/newsdesk/app/news"
)

// BackfillSummariesTask fills in summary bullets for articles that were
// loaded without any.
type BackfillSummariesTask struct {
	Task
	catalog *news.Catalog
}

func NewBackfillSummariesTask(catalog *news.Catalog) *BackfillSummariesTask {
	return &BackfillSummariesTask{
		Task:    NewTask(TaskTypeBackfillSummaries),
		catalog: catalog,
	}
}

func (t *BackfillSummariesTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	ids := t.catalog.UnsummarizedIDs()
	backfilled := 0

	for _, id := range ids {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		article, ok := t.catalog.GetByID(id)
		if !ok {
			slog.Warn("Article disappeared during summary backfill", "id", id)
			continue
		}

		summary := assistant.Summarize(*article)
		if err := t.catalog.SetSummary(id, summary); err != nil {
			slog.Error("Task failed", "type", "BackfillSummaries", "id", id, "error", err)
			return fmt.Errorf("failed to set summary for article %s: %w", id, err)
		}
		backfilled++
	}

	slog.Info("Task completed",
		"type", "BackfillSummaries",
		"backfilled", backfilled,
		"duration", t.GetDuration())

	return nil
}
