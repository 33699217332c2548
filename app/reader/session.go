package reader

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/newsroom/newsdesk/app/database"
	"github.com/newsroom/newsdesk/app/news"
)

type NewsFetcher interface {
	GetTopHeadlines(ctx context.Context, category news.Category) ([]news.Article, error)
	SearchNews(ctx context.Context, query string) ([]news.Article, error)
}

var _ NewsFetcher = (*news.Service)(nil)

// Session owns the reader state: selected category, search query and the
// derived, bookmark-annotated article list. Every state change re-derives
// the list; a non-empty query takes precedence over the category.
//
// Each derive is tagged with a monotonically increasing sequence number.
// A derive that finishes after a newer one was dispatched is discarded,
// so a slow fetch can never overwrite fresher state.
type Session struct {
	fetcher   NewsFetcher
	bookmarks database.BookmarkRepository

	mu       sync.Mutex
	seq      uint64
	category news.Category
	query    string
	loading  bool
	articles []ArticleView
}

func NewSession(fetcher NewsFetcher, bookmarks database.BookmarkRepository) *Session {
	return &Session{
		fetcher:   fetcher,
		bookmarks: bookmarks,
		category:  news.CategoryAll,
	}
}

func (s *Session) SetCategory(ctx context.Context, category news.Category) error {
	s.mu.Lock()
	s.category = category
	s.mu.Unlock()

	return s.Refresh(ctx)
}

func (s *Session) SetQuery(ctx context.Context, query string) error {
	s.mu.Lock()
	s.query = query
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// Refresh re-derives the article list from the current state. Safe to
// call concurrently; only the latest dispatched derive commits.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.loading = true
	category, query := s.category, s.query
	s.mu.Unlock()

	var articles []news.Article
	var err error
	if strings.TrimSpace(query) != "" {
		articles, err = s.fetcher.SearchNews(ctx, query)
	} else {
		articles, err = s.fetcher.GetTopHeadlines(ctx, category)
	}
	if err != nil {
		s.finish(seq, nil, err)
		return err
	}

	bookmarked, err := s.bookmarks.GetIDSet()
	if err != nil {
		s.finish(seq, nil, err)
		return err
	}

	s.finish(seq, Annotate(articles, bookmarked), nil)
	return nil
}

func (s *Session) finish(seq uint64, articles []ArticleView, deriveErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		slog.Debug("Discarding superseded derive result", "seq", seq, "latest", s.seq)
		return
	}

	s.loading = false
	if deriveErr == nil {
		s.articles = articles
	}
}

// ToggleBookmark flips the bookmark state of an article and re-annotates
// the current view without re-fetching.
func (s *Session) ToggleBookmark(articleID string) (bool, error) {
	bookmarked, err := s.bookmarks.Toggle(articleID)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.articles {
		if s.articles[i].ID == articleID {
			s.articles[i].Bookmarked = bookmarked
		}
	}

	return bookmarked, nil
}

// View returns a snapshot of the current reader state.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles := make([]ArticleView, len(s.articles))
	copy(articles, s.articles)

	return View{
		Category: s.category,
		Query:    s.query,
		Loading:  s.loading,
		Articles: articles,
	}
}
