package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/newsroom/newsdesk/app/cfg"
	"github.com/newsroom/newsdesk/app/news"
)

const helpMessage = "Based on current news articles, I can help you with information about technology, health, politics, sports, and business. What specific topic would you like to know about?"

const emptyCatalogMessage = "I don't have any articles loaded at the moment. Please try again once the news has refreshed."

// rule pairs a question predicate with a handler. Handlers may decline by
// returning ok=false, in which case evaluation falls through to the next
// rule.
type rule struct {
	matches func(question string) bool
	respond func(articles []news.Article) (string, bool)
}

// Responder answers questions about the loaded articles by evaluating an
// ordered rule list, first match wins. It keeps no state between calls.
type Responder struct {
	delay time.Duration
	rules []rule
}

func NewResponder() *Responder {
	cfg := cfg.Get()

	return &Responder{
		delay: time.Duration(cfg.ChatDelay) * time.Millisecond,
		rules: []rule{
			{matches: containsAny("latest", "recent"), respond: respondLatest},
			{matches: containsAny("technology", "tech"), respond: respondTechnology},
			{matches: containsAny("health"), respond: respondHealth},
		},
	}
}

// Answer resolves a question against the article set after the simulated
// latency. It never fails on normal input; the only error condition is a
// cancelled context.
func (r *Responder) Answer(ctx context.Context, question string, articles []news.Article) (string, error) {
	timer := time.NewTimer(r.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}

	return r.respond(question, articles), nil
}

func (r *Responder) respond(question string, articles []news.Article) string {
	lower := strings.ToLower(question)

	for _, rule := range r.rules {
		if !rule.matches(lower) {
			continue
		}
		if answer, ok := rule.respond(articles); ok {
			return answer
		}
	}

	return helpMessage
}

func containsAny(keywords ...string) func(string) bool {
	return func(question string) bool {
		for _, kw := range keywords {
			if strings.Contains(question, kw) {
				return true
			}
		}
		return false
	}
}

func respondLatest(articles []news.Article) (string, bool) {
	if len(articles) == 0 {
		return emptyCatalogMessage, true
	}

	latest := lo.MaxBy(articles, func(a, b news.Article) bool {
		return a.PublishedAt.After(b.PublishedAt)
	})

	return fmt.Sprintf("The latest news is about %q. %s", latest.Title, latest.Description), true
}

func respondTechnology(articles []news.Article) (string, bool) {
	techArticles := news.ByCategory(articles, news.CategoryTechnology)
	if len(techArticles) == 0 {
		return "", false
	}

	titles := lo.Map(techArticles, func(a news.Article, _ int) string {
		return a.Title
	})

	return fmt.Sprintf("Here are the latest technology updates: %s. The most significant development is in AI and quantum computing.",
		strings.Join(titles, ", ")), true
}

func respondHealth(articles []news.Article) (string, bool) {
	healthArticles := news.ByCategory(articles, news.CategoryHealth)
	if len(healthArticles) == 0 {
		return "", false
	}

	first := healthArticles[0]
	if len(first.Summary) == 0 {
		return "", false
	}

	return fmt.Sprintf("Recent health news includes: %s. %s", first.Title, first.Summary[0]), true
}
