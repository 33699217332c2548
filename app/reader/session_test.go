package reader

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/newsroom/newsdesk/app/database"
	"github.com/newsroom/newsdesk/app/news"
)

type fakeBookmarks struct {
	mu  sync.Mutex
	set map[string]bool
}

func newFakeBookmarks() *fakeBookmarks {
	return &fakeBookmarks{set: make(map[string]bool)}
}

func (f *fakeBookmarks) Toggle(articleID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.set[articleID] {
		delete(f.set, articleID)
		return false, nil
	}
	f.set[articleID] = true
	return true, nil
}

func (f *fakeBookmarks) IsBookmarked(articleID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.set[articleID], nil
}

func (f *fakeBookmarks) GetIDs() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for id := range f.set {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeBookmarks) GetIDSet() (map[string]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	set := make(map[string]bool, len(f.set))
	for id := range f.set {
		set[id] = true
	}
	return set, nil
}

func (f *fakeBookmarks) GetBookmarks() ([]database.Bookmark, error) {
	ids, _ := f.GetIDs()
	bookmarks := make([]database.Bookmark, len(ids))
	for i, id := range ids {
		bookmarks[i] = database.Bookmark{ArticleID: id}
	}
	return bookmarks, nil
}

func (f *fakeBookmarks) Count() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.set), nil
}

var _ database.BookmarkRepository = (*fakeBookmarks)(nil)

// staticFetcher serves the sample catalog without latency.
type staticFetcher struct{}

func (staticFetcher) GetTopHeadlines(_ context.Context, category news.Category) ([]news.Article, error) {
	return news.ByCategory(news.SampleArticles(), category), nil
}

func (staticFetcher) SearchNews(_ context.Context, query string) ([]news.Article, error) {
	return news.Search(news.SampleArticles(), query), nil
}

// scriptedFetcher blocks each headline call until the test releases it,
// so completion order can be forced.
type scriptedFetcher struct {
	mu    sync.Mutex
	calls []chan []news.Article
}

func (f *scriptedFetcher) GetTopHeadlines(_ context.Context, _ news.Category) ([]news.Article, error) {
	ch := make(chan []news.Article)
	f.mu.Lock()
	f.calls = append(f.calls, ch)
	f.mu.Unlock()
	return <-ch, nil
}

func (f *scriptedFetcher) SearchNews(_ context.Context, _ string) ([]news.Article, error) {
	return nil, nil
}

func (f *scriptedFetcher) waitForCalls(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		f.mu.Lock()
		count := len(f.calls)
		f.mu.Unlock()
		if count >= n {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %d fetch calls", n)
}

func TestSession_RefreshDerivesAnnotatedView(t *testing.T) {
	bookmarks := newFakeBookmarks()
	bookmarks.Toggle("3")

	session := NewSession(staticFetcher{}, bookmarks)
	if err := session.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	view := session.View()
	if view.Loading {
		t.Error("Loading should be false after a completed derive")
	}
	if len(view.Articles) != 6 {
		t.Fatalf("Expected 6 articles, got %d", len(view.Articles))
	}
	for _, a := range view.Articles {
		if a.ID == "3" && !a.Bookmarked {
			t.Error("Article '3' should be annotated as bookmarked")
		}
		if a.ID != "3" && a.Bookmarked {
			t.Errorf("Article '%s' should not be bookmarked", a.ID)
		}
	}
}

func TestSession_QueryTakesPrecedenceOverCategory(t *testing.T) {
	session := NewSession(staticFetcher{}, newFakeBookmarks())

	if err := session.SetCategory(context.Background(), news.CategorySports); err != nil {
		t.Fatalf("SetCategory failed: %v", err)
	}
	if err := session.SetQuery(context.Background(), "quantum"); err != nil {
		t.Fatalf("SetQuery failed: %v", err)
	}

	view := session.View()
	if len(view.Articles) != 1 || view.Articles[0].ID != "3" {
		t.Errorf("Expected the quantum article via search, got %v", view.Articles)
	}

	// Clearing the query falls back to the category selection
	if err := session.SetQuery(context.Background(), ""); err != nil {
		t.Fatalf("SetQuery failed: %v", err)
	}
	view = session.View()
	if len(view.Articles) != 1 || view.Articles[0].Category != news.CategorySports {
		t.Errorf("Expected sports articles after clearing query, got %v", view.Articles)
	}
}

func TestSession_StaleDeriveIsDiscarded(t *testing.T) {
	fetcher := &scriptedFetcher{}
	session := NewSession(fetcher, newFakeBookmarks())

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		session.Refresh(context.Background())
	}()
	fetcher.waitForCalls(t, 1)

	go func() {
		defer wg.Done()
		session.Refresh(context.Background())
	}()
	fetcher.waitForCalls(t, 2)

	fresh := []news.Article{{ID: "fresh", Title: "Fresh", Category: news.CategoryTechnology}}
	stale := []news.Article{{ID: "stale", Title: "Stale", Category: news.CategoryTechnology}}

	// The newer derive completes first, then the older one trickles in
	fetcher.calls[1] <- fresh
	fetcher.calls[0] <- stale
	wg.Wait()

	view := session.View()
	if len(view.Articles) != 1 || view.Articles[0].ID != "fresh" {
		t.Fatalf("Stale derive overwrote newer state: %v", view.Articles)
	}
	if view.Loading {
		t.Error("Loading should be cleared by the latest derive")
	}
}

func TestSession_ToggleBookmarkReannotates(t *testing.T) {
	session := NewSession(staticFetcher{}, newFakeBookmarks())
	if err := session.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	bookmarked, err := session.ToggleBookmark("3")
	if err != nil {
		t.Fatalf("ToggleBookmark failed: %v", err)
	}
	if !bookmarked {
		t.Error("Expected article '3' to be bookmarked")
	}

	for _, a := range session.View().Articles {
		if a.ID == "3" && !a.Bookmarked {
			t.Error("View should reflect the new bookmark without a refetch")
		}
	}

	bookmarked, err = session.ToggleBookmark("3")
	if err != nil {
		t.Fatalf("ToggleBookmark failed: %v", err)
	}
	if bookmarked {
		t.Error("Second toggle should clear the bookmark")
	}
}

func TestAnnotate_PureProjection(t *testing.T) {
	articles := news.SampleArticles()
	set := map[string]bool{"2": true, "5": true}

	views := Annotate(articles, set)
	if len(views) != len(articles) {
		t.Fatalf("Expected %d views, got %d", len(articles), len(views))
	}
	for i, v := range views {
		if v.ID != articles[i].ID {
			t.Errorf("Order not preserved at index %d", i)
		}
		if v.Bookmarked != set[v.ID] {
			t.Errorf("Wrong bookmark flag for article %s", v.ID)
		}
	}
}
