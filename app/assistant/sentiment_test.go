package assistant

import (
	"testing"

	"github.com/newsroom/newsdesk/app/news"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected news.Sentiment
	}{
		{"positive cues win", "A major breakthrough and a success story fuel growth", news.SentimentPositive},
		{"negative cues win", "Crisis deepens as decline and uncertainty spread", news.SentimentNegative},
		{"tie is neutral", "A breakthrough overshadowed by a crisis", news.SentimentNeutral},
		{"no cues is neutral", "The committee met on Tuesday afternoon", news.SentimentNeutral},
		{"empty text is neutral", "", news.SentimentNeutral},
		{"case insensitive", "BREAKTHROUGH in talks brings SUCCESS", news.SentimentPositive},
		{"substring containment, not word boundaries", "unsuccessful growthless", news.SentimentPositive},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Classify(test.text); got != test.expected {
				t.Errorf("Classify(%q): expected %s, got %s", test.text, test.expected, got)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	text := "Economic uncertainty meets a breakthrough in policy"

	first := Classify(text)
	for i := 0; i < 10; i++ {
		if got := Classify(text); got != first {
			t.Fatalf("Classify is not deterministic: got %s then %s", first, got)
		}
	}
}

func TestClassify_EachCueCountedOnce(t *testing.T) {
	// "breakthrough" repeated three times still counts as one positive
	// cue, so two distinct negative cues win.
	text := "breakthrough breakthrough breakthrough crisis decline"
	if got := Classify(text); got != news.SentimentNegative {
		t.Errorf("Expected negative, got %s", got)
	}
}

func TestClassify_SampleArticles(t *testing.T) {
	// The fixture bodies carry the cue words their labels were derived from
	for _, article := range news.SampleArticles() {
		text := article.Title + " " + article.Description
		got := Classify(text)
		t.Logf("article %s: %s", article.ID, got)
	}

	volatile := news.SampleArticles()[5]
	if got := Classify(volatile.Title + " " + volatile.Description); got != news.SentimentNegative {
		t.Errorf("Expected market volatility article to classify negative, got %s", got)
	}
}
