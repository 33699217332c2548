package news

import (
	"context"
	"time"

	"github.com/newsroom/newsdesk/app/cfg"
)

// Service is the mock article fetch surface. Results are deterministic
// given the catalog contents; each call waits out a configured artificial
// latency to mimic a remote news API.
type Service struct {
	catalog     *Catalog
	fetchDelay  time.Duration
	searchDelay time.Duration
}

func NewService(catalog *Catalog) *Service {
	cfg := cfg.Get()

	return &Service{
		catalog:     catalog,
		fetchDelay:  time.Duration(cfg.FetchDelay) * time.Millisecond,
		searchDelay: time.Duration(cfg.SearchDelay) * time.Millisecond,
	}
}

// GetTopHeadlines returns the catalog articles for a category, "all" (or
// empty) meaning every category.
func (s *Service) GetTopHeadlines(ctx context.Context, category Category) ([]Article, error) {
	if err := wait(ctx, s.fetchDelay); err != nil {
		return nil, err
	}

	if category == "" {
		category = CategoryAll
	}
	return ByCategory(s.catalog.GetAll(), category), nil
}

// SearchNews returns the catalog articles matching a free-text query.
func (s *Service) SearchNews(ctx context.Context, query string) ([]Article, error) {
	if err := wait(ctx, s.searchDelay); err != nil {
		return nil, err
	}

	return Search(s.catalog.GetAll(), query), nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
