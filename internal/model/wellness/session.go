package wellness

import (
	"time"

	"github.com/moodlift/moodlift/backend/internal/analysis/mood"
)

// Session captures a transient anonymous wellness session. All per-session
// state (check-in history, delivered-content ledgers) hangs off its ID.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// CheckIn records one mood check-in for audit and history views.
type CheckIn struct {
	ID         string          `json:"id"`
	SessionID  string          `json:"sessionId"`
	Text       string          `json:"text"`
	Mood       mood.Category   `json:"mood"`
	Confidence mood.Confidence `json:"confidence"`
	Reason     string          `json:"reason"`
	CreatedAt  time.Time       `json:"createdAt"`
}
