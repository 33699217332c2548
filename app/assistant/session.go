package assistant

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const greeting = "Hi! I'm your AI news assistant. Ask me about the latest news, specific topics, or anything you'd like to know!"

// Session is an append-only chat transcript for one process lifetime.
type Session struct {
	messages []ChatMessage
	mu       sync.RWMutex
}

func NewSession() *Session {
	s := &Session{}
	s.Append(greeting, false)
	return s
}

func (s *Session) Append(text string, isUser bool) ChatMessage {
	message := ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		IsUser:    isUser,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)

	return message
}

func (s *Session) Messages() []ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]ChatMessage, len(s.messages))
	copy(messages, s.messages)
	return messages
}

func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}
