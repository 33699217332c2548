package speech

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Speaker is the text-to-speech collaborator surface. At most one
// utterance is active at a time; starting a new one supersedes the
// current one.
type Speaker interface {
	Speak(text string) error
	Stop()
	IsSpeaking() bool
}

var _ Speaker = (*Synthesizer)(nil)

// Synthesizer stands in for a platform speech engine. Playback is
// simulated: an utterance "plays" for a duration proportional to its
// word count, then finishes on its own unless stopped or superseded.
type Synthesizer struct {
	perWord time.Duration

	mu         sync.Mutex
	generation uint64
	speaking   bool
	timer      *time.Timer
}

func NewSynthesizer(perWord time.Duration) *Synthesizer {
	return &Synthesizer{perWord: perWord}
}

func (s *Synthesizer) Speak(text string) error {
	words := strings.Fields(text)
	if len(words) == 0 {
		return fmt.Errorf("nothing to speak")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}

	s.generation++
	generation := s.generation
	s.speaking = true

	duration := time.Duration(len(words)) * s.perWord
	s.timer = time.AfterFunc(duration, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// A newer utterance may have taken over in the meantime
		if s.generation == generation {
			s.speaking = false
		}
	})

	slog.Debug("Utterance started", "words", len(words), "duration", duration)

	return nil
}

// Stop cancels the active utterance. Idempotent.
func (s *Synthesizer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.generation++
	s.speaking = false
}

func (s *Synthesizer) IsSpeaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking
}
