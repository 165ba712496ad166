package mood

import "strings"

const (
	keywordWeight = 2
	// A single emoji is stronger evidence of affect than a single word.
	emojiWeight = 3

	highThreshold   = 5
	mediumThreshold = 3
)

const (
	reasonNoInput  = "no input provided"
	reasonNoSignal = "no strong signal; defaulting to neutral"
)

// Classifier scores free text against an injected lexicon. It is a pure
// function of its input: no I/O, no state, always returns a result.
type Classifier struct {
	lexicon Lexicon
}

// NewClassifier builds a classifier over the given lexicon.
func NewClassifier(lexicon Lexicon) *Classifier {
	return &Classifier{lexicon: lexicon}
}

type categoryScore struct {
	score    int
	keywords []string
	emojis   []string
}

// Classify assigns a mood category, confidence tier, and human-readable
// rationale to the given text. Empty or whitespace-only input classifies as
// neutral with low confidence.
func (c *Classifier) Classify(text string) Result {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{Mood: Neutral, Confidence: ConfidenceLow, Reason: reasonNoInput}
	}

	normalized := strings.ToLower(trimmed)

	var (
		best         categoryScore
		bestCategory Category
	)
	for _, category := range Categories {
		entry := c.lexicon[category]
		sc := scoreEntry(normalized, trimmed, entry)
		// Strict greater-than keeps the earlier category on plain ties; an
		// emoji-backed score beats a keyword-only score of equal value.
		if sc.score > best.score ||
			(sc.score == best.score && sc.score > 0 && len(sc.emojis) > 0 && len(best.emojis) == 0) {
			best = sc
			bestCategory = category
		}
	}

	if best.score == 0 {
		return Result{Mood: Neutral, Confidence: ConfidenceLow, Reason: reasonNoSignal}
	}

	return Result{
		Mood:       bestCategory,
		Confidence: confidenceFor(best.score),
		Reason:     buildReason(best),
	}
}

// scoreEntry counts each distinct keyword and emoji once, regardless of how
// often it occurs in the text.
func scoreEntry(normalized, raw string, entry Entry) categoryScore {
	var sc categoryScore
	for _, keyword := range entry.Keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(normalized, keyword) {
			sc.score += keywordWeight
			sc.keywords = append(sc.keywords, keyword)
		}
	}
	for _, emoji := range entry.Emojis {
		if emoji == "" {
			continue
		}
		if strings.Contains(raw, emoji) {
			sc.score += emojiWeight
			sc.emojis = append(sc.emojis, emoji)
		}
	}
	return sc
}

func confidenceFor(score int) Confidence {
	switch {
	case score >= highThreshold:
		return ConfidenceHigh
	case score >= mediumThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// buildReason cites the signals that drove the decision, e.g.
// "Keywords: good, right | Emojis: 😄".
func buildReason(sc categoryScore) string {
	var parts []string
	if len(sc.keywords) > 0 {
		parts = append(parts, "Keywords: "+strings.Join(sc.keywords, ", "))
	}
	if len(sc.emojis) > 0 {
		parts = append(parts, "Emojis: "+strings.Join(sc.emojis, " "))
	}
	return strings.Join(parts, " | ")
}
