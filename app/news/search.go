package news

import (
	"strings"

	"github.com/samber/lo"
)

// Search returns the subsequence of articles whose title, description or
// content contains query, case-insensitively. An empty or whitespace-only
// query returns the input unchanged. Relative order is preserved.
func Search(articles []Article, query string) []Article {
	if strings.TrimSpace(query) == "" {
		return articles
	}

	q := strings.ToLower(query)
	return lo.Filter(articles, func(a Article, _ int) bool {
		return strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Description), q) ||
			strings.Contains(strings.ToLower(a.Content), q)
	})
}

// ByCategory returns the subsequence of articles in the given category.
// "all" returns the full input. Unknown categories yield an empty result
// rather than an error.
func ByCategory(articles []Article, category Category) []Article {
	if category == CategoryAll {
		return articles
	}

	return lo.Filter(articles, func(a Article, _ int) bool {
		return a.Category == category
	})
}
