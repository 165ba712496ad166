package content

import (
	"github.com/moodlift/moodlift/backend/internal/analysis/mood"
)

// Type names an independent catalog and deduplication namespace.
type Type string

const (
	TypeJoke  Type = "joke"
	TypeQuote Type = "quote"
	TypeImage Type = "image"
	TypeMusic Type = "music"
	TypeGame  Type = "game"
)

// Types lists every content type.
var Types = []Type{TypeJoke, TypeQuote, TypeImage, TypeMusic, TypeGame}

// ParseType validates a raw string against the known content types.
func ParseType(raw string) (Type, bool) {
	for _, t := range Types {
		if string(t) == raw {
			return t, true
		}
	}
	return "", false
}

// Item is a single piece of uplifting content. ID is stable within its
// (type, mood) pair and is the unit of deduplication.
type Item struct {
	ID          string        `json:"id"`
	Type        Type          `json:"type"`
	Mood        mood.Category `json:"mood,omitempty"`
	Text        string        `json:"text,omitempty"`
	Title       string        `json:"title,omitempty"`
	Attribution string        `json:"attribution,omitempty"`
	MediaURL    string        `json:"mediaUrl,omitempty"`
	DurationSec int           `json:"durationSec,omitempty"`
}
