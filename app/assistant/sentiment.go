package assistant

import (
	"strings"

	"github.com/newsroom/newsdesk/app/news"
)

// Cue word lists for the keyword-count sentiment heuristic. Matching is
// substring containment over the lowercased text, each cue counted at
// most once.
var positiveCues = []string{"breakthrough", "success", "achievement", "positive", "growth", "improvement"}
var negativeCues = []string{"crisis", "problem", "decline", "concern", "volatility", "uncertainty"}

// Classify labels text as positive, negative or neutral. Strictly more
// positive cues wins positive, strictly more negative wins negative, a
// tie (including zero matches) is neutral. Deterministic and pure.
func Classify(text string) news.Sentiment {
	lower := strings.ToLower(text)

	positiveCount := countCues(lower, positiveCues)
	negativeCount := countCues(lower, negativeCues)

	switch {
	case positiveCount > negativeCount:
		return news.SentimentPositive
	case negativeCount > positiveCount:
		return news.SentimentNegative
	default:
		return news.SentimentNeutral
	}
}

func countCues(lower string, cues []string) int {
	count := 0
	for _, cue := range cues {
		if strings.Contains(lower, cue) {
			count++
		}
	}
	return count
}
