package database

import (
	"time"
)

// Bookmark represents a saved article reference
type Bookmark struct {
	ArticleID string
	CreatedAt time.Time
}

// Preferences is the durable user preference record. It is stored as a
// single JSON value; the field names below are the stable wire names.
type Preferences struct {
	Categories   []string `json:"categories"`
	Sources      []string `json:"sources"`
	DarkMode     bool     `json:"darkMode"`
	VoiceEnabled bool     `json:"voiceEnabled"`
}

// DefaultPreferences returns the record created on first load.
func DefaultPreferences() Preferences {
	return Preferences{
		Categories:   []string{"all"},
		Sources:      []string{},
		DarkMode:     false,
		VoiceEnabled: true,
	}
}
