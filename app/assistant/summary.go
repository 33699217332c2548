package assistant

import "github.com/newsroom/newsdesk/app/news"

var fallbackSummary = []string{
	"Key point extracted from the article content",
	"Important detail highlighted by AI analysis",
	"Significant implication or consequence identified",
	"Additional context or background information",
}

// Summarize returns the article's own summary bullets when present,
// otherwise a canned fallback set.
func Summarize(article news.Article) []string {
	if len(article.Summary) > 0 {
		return article.Summary
	}

	summary := make([]string, len(fallbackSummary))
	copy(summary, fallbackSummary)
	return summary
}
