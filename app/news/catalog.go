package news

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"
)

// Catalog holds the canonical article list for the process lifetime.
// It is seeded from the built-in sample set and optionally extended with
// fixture files from a directory: one article per .yml file, or a local
// RSS/Atom .xml file whose items are imported in feed order.
type Catalog struct {
	articlesDir string
	articles    []Article
	index       map[string]int
	mu          sync.RWMutex
}

func NewCatalog(articlesDir string) *Catalog {
	return &Catalog{
		articlesDir: articlesDir,
		index:       make(map[string]int),
	}
}

// Run seeds the catalog and loads fixture files. Safe to call again to
// reload; annotations applied since the last load are discarded.
func (c *Catalog) Run() error {
	articles := SampleArticles()

	loaded, err := c.loadDir()
	if err != nil {
		return err
	}
	articles = append(articles, loaded...)

	index := make(map[string]int, len(articles))
	deduped := make([]Article, 0, len(articles))
	for _, a := range articles {
		if _, ok := index[a.ID]; ok {
			slog.Warn("Duplicate article ID in fixtures, keeping first", "id", a.ID)
			continue
		}
		index[a.ID] = len(deduped)
		deduped = append(deduped, a)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.articles = deduped
	c.index = index

	return nil
}

func (c *Catalog) loadDir() ([]Article, error) {
	if c.articlesDir == "" {
		return nil, nil
	}
	if _, err := os.Stat(c.articlesDir); os.IsNotExist(err) {
		return nil, nil
	}

	files, err := filepath.Glob(filepath.Join(c.articlesDir, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list fixture files: %w", err)
	}

	var articles []Article
	for _, file := range files {
		switch filepath.Ext(file) {
		case ".yml", ".yaml":
			article, err := c.parseArticleFile(file)
			if err != nil {
				return nil, fmt.Errorf("error loading %s: %w", file, err)
			}
			articles = append(articles, *article)
		case ".xml":
			imported, err := c.importFeedFile(file)
			if err != nil {
				return nil, fmt.Errorf("error importing %s: %w", file, err)
			}
			articles = append(articles, imported...)
		}
	}

	return articles, nil
}

func (c *Catalog) parseArticleFile(file string) (*Article, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var article Article
	if err := yaml.Unmarshal(data, &article); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if article.ID == "" {
		// Derive ID from filename, matching the fixture naming convention
		base := filepath.Base(file)
		article.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if err := c.validateArticle(&article); err != nil {
		return nil, fmt.Errorf("invalid article %s: %w", file, err)
	}

	return &article, nil
}

// importFeedFile reads a local RSS/Atom file and converts its items into
// articles. The category is derived from the filename when it names a
// known category. Sentiment and summaries are left empty for the
// background annotation tasks to fill in.
func (c *Catalog) importFeedFile(file string) ([]Article, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed file: %w", err)
	}
	defer f.Close()

	parsed, err := gofeed.NewParser().Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	base := filepath.Base(file)
	fileCategory := Category(strings.TrimSuffix(base, filepath.Ext(base)))
	if !ValidCategory(fileCategory) {
		fileCategory = CategoryTechnology
	}

	source := Source{ID: fileCategory.Icon(), Name: parsed.Title}
	if parsed.Title != "" {
		source.ID = strings.ToLower(strings.ReplaceAll(parsed.Title, " ", "-"))
	}

	var articles []Article
	for _, item := range parsed.Items {
		article := Article{
			ID:          item.GUID,
			Title:       item.Title,
			Description: item.Description,
			Content:     item.Content,
			URL:         item.Link,
			Source:      source,
			Category:    fileCategory,
		}
		if article.ID == "" {
			article.ID = item.Link
		}
		if item.PublishedParsed != nil {
			article.PublishedAt = *item.PublishedParsed
		}
		if item.Image != nil {
			article.ImageURL = item.Image.URL
		}
		if len(item.Authors) > 0 {
			article.Author = item.Authors[0].Name
		}
		for _, cat := range item.Categories {
			if ValidCategory(Category(strings.ToLower(cat))) {
				article.Category = Category(strings.ToLower(cat))
				break
			}
		}

		if err := c.validateArticle(&article); err != nil {
			slog.Warn("Skipping invalid feed item", "file", file, "error", err)
			continue
		}
		articles = append(articles, article)
	}

	return articles, nil
}

func (c *Catalog) validateArticle(article *Article) error {
	if article.ID == "" {
		return fmt.Errorf("article ID is required")
	}
	if article.Title == "" {
		return fmt.Errorf("article title is required")
	}
	if !ValidCategory(article.Category) {
		return fmt.Errorf("invalid category: %s", article.Category)
	}
	if article.Sentiment != "" && !ValidSentiment(article.Sentiment) {
		return fmt.Errorf("invalid sentiment: %s", article.Sentiment)
	}
	return nil
}

// GetAll returns a copy of the catalog in load order. Articles without a
// sentiment label yet read as neutral.
func (c *Catalog) GetAll() []Article {
	c.mu.RLock()
	defer c.mu.RUnlock()

	articles := make([]Article, len(c.articles))
	copy(articles, c.articles)
	for i := range articles {
		if articles[i].Sentiment == "" {
			articles[i].Sentiment = SentimentNeutral
		}
	}
	return articles
}

func (c *Catalog) GetByID(id string) (*Article, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	article := c.articles[i]
	if article.Sentiment == "" {
		article.Sentiment = SentimentNeutral
	}
	return &article, true
}

func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.articles)
}

// UnlabeledIDs returns the IDs of articles still awaiting sentiment
// annotation.
func (c *Catalog) UnlabeledIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var ids []string
	for _, a := range c.articles {
		if a.Sentiment == "" {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// UnsummarizedIDs returns the IDs of articles without summary bullets.
func (c *Catalog) UnsummarizedIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var ids []string
	for _, a := range c.articles {
		if len(a.Summary) == 0 {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

func (c *Catalog) SetSentiment(id string, sentiment Sentiment) error {
	if !ValidSentiment(sentiment) {
		return fmt.Errorf("invalid sentiment: %s", sentiment)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return fmt.Errorf("article with ID '%s' not found", id)
	}
	c.articles[i].Sentiment = sentiment
	return nil
}

func (c *Catalog) SetSummary(id string, summary []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return fmt.Errorf("article with ID '%s' not found", id)
	}
	c.articles[i].Summary = summary
	return nil
}
