package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/newsroom/newsdesk/app/assistant"
	"github.com/newsroom/newsdesk/app/news"
)

// AnnotateSentimentTask labels every article still missing a sentiment,
// using the keyword heuristic over title, description and content.
type AnnotateSentimentTask struct {
	Task
	catalog *news.Catalog
}

func NewAnnotateSentimentTask(catalog *news.Catalog) *AnnotateSentimentTask {
	return &AnnotateSentimentTask{
		Task:    NewTask(TaskTypeAnnotateSentiment),
		catalog: catalog,
	}
}

func (t *AnnotateSentimentTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	ids := t.catalog.UnlabeledIDs()
	annotated := 0

	for _, id := range ids {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		article, ok := t.catalog.GetByID(id)
		if !ok {
			slog.Warn("Article disappeared during annotation", "id", id)
			continue
		}

		text := strings.Join([]string{article.Title, article.Description, article.Content}, " ")
		sentiment := assistant.Classify(text)

		if err := t.catalog.SetSentiment(id, sentiment); err != nil {
			slog.Error("Task failed", "type", "AnnotateSentiment", "id", id, "error", err)
			return fmt.Errorf("failed to set sentiment for article %s: %w", id, err)
		}
		annotated++
	}

	slog.Info("Task completed",
		"type", "AnnotateSentiment",
		"annotated", annotated,
		"duration", t.GetDuration())

	return nil
}
