package tasks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/newsroom/newsdesk/app/news"
)

func loadTestCatalog(t *testing.T) *news.Catalog {
	t.Helper()

	dir := t.TempDir()
	fixture := `title: "Market Volatility Raises Concern Over Growth"
description: "Analysts warn of a looming crisis as uncertainty spreads."
content: "The decline in confidence is a growing problem for investors."
category: business
`
	if err := os.WriteFile(filepath.Join(dir, "markets-1.yml"), []byte(fixture), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	catalog := news.NewCatalog(dir)
	if err := catalog.Run(); err != nil {
		t.Fatalf("Catalog load failed: %v", err)
	}
	return catalog
}

func TestAnnotateSentimentTask(t *testing.T) {
	catalog := loadTestCatalog(t)

	if ids := catalog.UnlabeledIDs(); len(ids) != 1 || ids[0] != "markets-1" {
		t.Fatalf("Expected one unlabeled article, got %v", ids)
	}

	task := NewAnnotateSentimentTask(catalog)
	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if ids := catalog.UnlabeledIDs(); len(ids) != 0 {
		t.Errorf("Expected no unlabeled articles, got %v", ids)
	}

	article, ok := catalog.GetByID("markets-1")
	if !ok {
		t.Fatal("Article 'markets-1' not found")
	}
	if article.Sentiment != news.SentimentNegative {
		t.Errorf("Expected negative sentiment, got %s", article.Sentiment)
	}
}

func TestAnnotateSentimentTaskRespectsContext(t *testing.T) {
	catalog := loadTestCatalog(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	task := NewAnnotateSentimentTask(catalog)
	if err := task.Execute(ctx); err == nil {
		t.Error("Expected error for cancelled context")
	}
	if ids := catalog.UnlabeledIDs(); len(ids) != 1 {
		t.Errorf("Cancelled task must not annotate, got %v", ids)
	}
}

func TestBackfillSummariesTask(t *testing.T) {
	catalog := loadTestCatalog(t)

	if ids := catalog.UnsummarizedIDs(); len(ids) != 1 || ids[0] != "markets-1" {
		t.Fatalf("Expected one unsummarized article, got %v", ids)
	}

	task := NewBackfillSummariesTask(catalog)
	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if ids := catalog.UnsummarizedIDs(); len(ids) != 0 {
		t.Errorf("Expected no unsummarized articles, got %v", ids)
	}

	article, ok := catalog.GetByID("markets-1")
	if !ok {
		t.Fatal("Article 'markets-1' not found")
	}
	if len(article.Summary) != 4 {
		t.Errorf("Expected 4 fallback summary bullets, got %d", len(article.Summary))
	}
}

func TestReloadCatalogTask(t *testing.T) {
	catalog := loadTestCatalog(t)

	task := NewAnnotateSentimentTask(catalog)
	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	reload := NewReloadCatalogTask(catalog)
	if err := reload.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	// A reload rebuilds from fixtures, so annotations are gone again
	if ids := catalog.UnlabeledIDs(); len(ids) != 1 {
		t.Errorf("Expected reload to reset annotations, got %v", ids)
	}
}

func TestTaskRetryBookkeeping(t *testing.T) {
	task := NewTask(TaskTypeAnnotateSentiment)

	if task.GetType() != TaskTypeAnnotateSentiment {
		t.Errorf("Unexpected task type: %s", task.GetType())
	}
	if task.GetID() == "" {
		t.Error("Task ID should not be empty")
	}
	if !task.CanRetry() {
		t.Error("Fresh task should be retryable")
	}

	for i := 0; i < DefaultMaxRetries; i++ {
		task.IncrementRetryCount()
	}
	if task.CanRetry() {
		t.Error("Task should not be retryable after max retries")
	}
	if task.GetRetryCount() != DefaultMaxRetries {
		t.Errorf("Expected retry count %d, got %d", DefaultMaxRetries, task.GetRetryCount())
	}
}
