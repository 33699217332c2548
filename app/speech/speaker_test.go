package speech

import (
	"testing"
	"time"
)

func TestSynthesizer_SpeakAndFinish(t *testing.T) {
	s := NewSynthesizer(5 * time.Millisecond)

	if err := s.Speak("three short words"); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}
	if !s.IsSpeaking() {
		t.Error("Expected IsSpeaking true right after Speak")
	}

	deadline := time.Now().Add(time.Second)
	for s.IsSpeaking() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if s.IsSpeaking() {
		t.Error("Utterance should finish on its own")
	}
}

func TestSynthesizer_StopIsIdempotent(t *testing.T) {
	s := NewSynthesizer(time.Hour)

	if err := s.Speak("a very long utterance that would play for hours"); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}

	s.Stop()
	if s.IsSpeaking() {
		t.Error("Expected IsSpeaking false after Stop")
	}
	s.Stop() // no effect
	if s.IsSpeaking() {
		t.Error("Stop must be idempotent")
	}
}

func TestSynthesizer_NewUtteranceSupersedesCurrent(t *testing.T) {
	s := NewSynthesizer(time.Hour)

	if err := s.Speak("first utterance"); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}
	if err := s.Speak("second utterance"); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}
	if !s.IsSpeaking() {
		t.Error("Second utterance should be active")
	}

	s.Stop()
	if s.IsSpeaking() {
		t.Error("Stop should silence the active utterance")
	}
}

func TestSynthesizer_RejectsEmptyText(t *testing.T) {
	s := NewSynthesizer(time.Millisecond)

	for _, text := range []string{"", "   ", "\n\t"} {
		if err := s.Speak(text); err == nil {
			t.Errorf("Speak(%q): expected error for empty text", text)
		}
	}
	if s.IsSpeaking() {
		t.Error("Failed Speak must not mark the synthesizer as speaking")
	}
}
