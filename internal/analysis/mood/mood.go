package mood

// Category is one of the fixed emotional-state labels the app recognizes.
type Category string

const (
	Happy    Category = "happy"
	Calm     Category = "calm"
	Neutral  Category = "neutral"
	Sad      Category = "sad"
	Angry    Category = "angry"
	Anxious  Category = "anxious"
	Stressed Category = "stressed"
)

// Categories lists every category in its canonical order. The order doubles
// as the final tie-break when two categories score equal, so it must not be
// rearranged.
var Categories = []Category{Happy, Calm, Neutral, Sad, Angry, Anxious, Stressed}

// ParseCategory validates a raw string against the known categories.
func ParseCategory(raw string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == raw {
			return c, true
		}
	}
	return "", false
}

// Confidence is a coarse strength-of-signal tier derived from the numeric
// score, not a probability.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Result carries a single classification outcome.
type Result struct {
	Mood       Category   `json:"mood"`
	Confidence Confidence `json:"confidence"`
	Reason     string     `json:"reason"`
}
