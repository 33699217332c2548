package assistant

import (
	"testing"

	"github.com/newsroom/newsdesk/app/news"
)

func TestSession_StartsWithGreeting(t *testing.T) {
	session := NewSession()

	messages := session.Messages()
	if len(messages) != 1 {
		t.Fatalf("Expected 1 greeting message, got %d", len(messages))
	}
	if messages[0].IsUser {
		t.Error("Greeting should come from the assistant")
	}
	if messages[0].ID == "" {
		t.Error("Message ID should not be empty")
	}
}

func TestSession_AppendOrderAndAuthors(t *testing.T) {
	session := NewSession()

	session.Append("What's the latest news?", true)
	session.Append("The latest news is about...", false)

	messages := session.Messages()
	if len(messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(messages))
	}
	if !messages[1].IsUser {
		t.Error("Second message should be from the user")
	}
	if messages[2].IsUser {
		t.Error("Third message should be from the assistant")
	}
	if messages[1].ID == messages[2].ID {
		t.Error("Message IDs should be unique")
	}
}

func TestSession_MessagesReturnsCopy(t *testing.T) {
	session := NewSession()
	session.Append("hello", true)

	messages := session.Messages()
	messages[0].Text = "mutated"

	if session.Messages()[0].Text == "mutated" {
		t.Error("Messages must return a copy of the transcript")
	}
}

func TestSummarize(t *testing.T) {
	withSummary := news.SampleArticles()[0]
	got := Summarize(withSummary)
	if len(got) != len(withSummary.Summary) || got[0] != withSummary.Summary[0] {
		t.Errorf("Expected the article's own summary, got %v", got)
	}

	withoutSummary := news.Article{ID: "x", Title: "No summary here"}
	fallback := Summarize(withoutSummary)
	if len(fallback) != 4 {
		t.Errorf("Expected 4 fallback bullets, got %d", len(fallback))
	}

	// Callers may mutate the returned slice freely
	fallback[0] = "mutated"
	if Summarize(withoutSummary)[0] == "mutated" {
		t.Error("Summarize must not share the fallback slice between calls")
	}
}
