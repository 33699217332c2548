package assistant

import "time"

// ChatMessage is one entry in a chat session transcript. Transcripts are
// in-memory only and scoped to a single session; a restart clears them.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	CreatedAt time.Time `json:"createdAt"`
}
