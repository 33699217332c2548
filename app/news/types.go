package news

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

func ValidSentiment(s Sentiment) bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

type Category string

const (
	CategoryAll        Category = "all"
	CategoryTechnology Category = "technology"
	CategoryPolitics   Category = "politics"
	CategoryHealth     Category = "health"
	CategoryBusiness   Category = "business"
	CategorySports     Category = "sports"
)

// Categories returns the selectable categories in display order,
// "all" first.
func Categories() []Category {
	return []Category{CategoryAll, CategoryTechnology, CategoryPolitics,
		CategoryHealth, CategoryBusiness, CategorySports}
}

// ValidCategory reports whether c names a real article category.
// "all" is a selection value, not an article category.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryTechnology, CategoryPolitics, CategoryHealth,
		CategoryBusiness, CategorySports:
		return true
	}
	return false
}

var categoryIcons = map[Category]string{
	CategoryAll:        "globe",
	CategoryTechnology: "cpu",
	CategoryPolitics:   "users",
	CategoryHealth:     "activity",
	CategoryBusiness:   "briefcase",
	CategorySports:     "trophy",
}

var titleCaser = cases.Title(language.English)

// Label returns the display label for a category.
func (c Category) Label() string {
	if c == CategoryAll {
		return "All News"
	}
	return titleCaser.String(string(c))
}

// Icon returns the icon name for a category.
func (c Category) Icon() string {
	return categoryIcons[c]
}

type Source struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

type Article struct {
	ID          string    `yaml:"id" json:"id"`
	Title       string    `yaml:"title" json:"title"`
	Description string    `yaml:"description" json:"description"`
	Content     string    `yaml:"content" json:"content"`
	URL         string    `yaml:"url" json:"url"`
	ImageURL    string    `yaml:"image_url" json:"imageUrl,omitempty"`
	Source      Source    `yaml:"source" json:"source"`
	Author      string    `yaml:"author" json:"author,omitempty"`
	PublishedAt time.Time `yaml:"published_at" json:"publishedAt"`
	Category    Category  `yaml:"category" json:"category"`
	Sentiment   Sentiment `yaml:"sentiment" json:"sentiment"`
	Summary     []string  `yaml:"summary" json:"summary"`
}
