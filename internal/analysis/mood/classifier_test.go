package mood

import (
	"strings"
	"testing"
)

func newTestClassifier() *Classifier {
	return NewClassifier(DefaultLexicon())
}

func TestClassifyEmptyInput(t *testing.T) {
	c := newTestClassifier()
	for _, text := range []string{"", "   ", "\n\t"} {
		result := c.Classify(text)
		if result.Mood != Neutral {
			t.Fatalf("empty input %q: expected neutral, got %s", text, result.Mood)
		}
		if result.Confidence != ConfidenceLow {
			t.Fatalf("empty input %q: expected low confidence, got %s", text, result.Confidence)
		}
		if result.Reason != "no input provided" {
			t.Fatalf("empty input %q: unexpected reason %q", text, result.Reason)
		}
	}
}

func TestClassifyNoSignalDefaultsToNeutral(t *testing.T) {
	c := newTestClassifier()
	result := c.Classify("the quarterly report ships thursday")
	if result.Mood != Neutral {
		t.Fatalf("expected neutral, got %s", result.Mood)
	}
	if result.Confidence != ConfidenceLow {
		t.Fatalf("expected low confidence, got %s", result.Confidence)
	}
	if result.Reason != "no strong signal; defaulting to neutral" {
		t.Fatalf("unexpected reason %q", result.Reason)
	}
}

func TestClassifySingleKeywordIsLowConfidence(t *testing.T) {
	c := newTestClassifier()
	result := c.Classify("feeling pretty anxious about tomorrow")
	if result.Mood != Anxious {
		t.Fatalf("expected anxious, got %s", result.Mood)
	}
	if result.Confidence != ConfidenceLow {
		t.Fatalf("single keyword should score 2 (low), got %s", result.Confidence)
	}
	if !strings.Contains(result.Reason, "anxious") {
		t.Fatalf("reason should cite the keyword, got %q", result.Reason)
	}
}

func TestClassifyKeywordPlusEmojiIsHighConfidence(t *testing.T) {
	c := newTestClassifier()
	// 2 (keyword) + 3 (emoji) = 5, the high boundary.
	result := c.Classify("so happy 😄")
	if result.Mood != Happy {
		t.Fatalf("expected happy, got %s", result.Mood)
	}
	if result.Confidence != ConfidenceHigh {
		t.Fatalf("keyword+emoji should reach high, got %s", result.Confidence)
	}
}

func TestClassifyTwoKeywordsIsMediumConfidence(t *testing.T) {
	c := newTestClassifier()
	result := c.Classify("totally calm and relaxed tonight")
	if result.Mood != Calm {
		t.Fatalf("expected calm, got %s", result.Mood)
	}
	if result.Confidence != ConfidenceMedium {
		t.Fatalf("two keywords should score 4 (medium), got %s", result.Confidence)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := newTestClassifier()
	text := "I am so stressed and tired 😫 today"
	first := c.Classify(text)
	second := c.Classify(text)
	if first != second {
		t.Fatalf("classification not deterministic: %+v vs %+v", first, second)
	}
}

func TestClassifyTieBreakPrefersEarlierCategory(t *testing.T) {
	c := newTestClassifier()
	// "good" (happy, +2) vs "grief" (sad, +2): equal keyword-only scores,
	// happy comes first in the canonical order.
	result := c.Classify("good grief")
	if result.Mood != Happy {
		t.Fatalf("expected happy on plain tie, got %s", result.Mood)
	}
}

func TestClassifyTieBreakPrefersEmojiBackedCategory(t *testing.T) {
	c := newTestClassifier()
	// happy: good, great, amazing, wonderful = 8 keyword-only.
	// sad: sad (+2) plus 😢 💔 (+6) = 8 emoji-backed; emoji evidence wins the tie.
	result := c.Classify("good great amazing wonderful 😢 💔 sad")
	if result.Mood != Sad {
		t.Fatalf("expected emoji-backed sad to win the tie, got %s", result.Mood)
	}
}

func TestClassifyHappyScenario(t *testing.T) {
	c := newTestClassifier()
	result := c.Classify("I feel so good today 😄 everything is going right!")
	if result.Mood != Happy {
		t.Fatalf("expected happy, got %s", result.Mood)
	}
	if result.Confidence != ConfidenceHigh {
		t.Fatalf("expected high confidence, got %s", result.Confidence)
	}
	if !strings.Contains(result.Reason, "good") || !strings.Contains(result.Reason, "right") {
		t.Fatalf("reason should cite matched keywords, got %q", result.Reason)
	}
	if !strings.Contains(result.Reason, "😄") {
		t.Fatalf("reason should cite matched emoji, got %q", result.Reason)
	}
}

func TestClassifyStressedScenario(t *testing.T) {
	c := newTestClassifier()
	result := c.Classify("Work is too much, I am really tired and done.")
	if result.Mood != Stressed {
		t.Fatalf("expected stressed, got %s", result.Mood)
	}
	if result.Confidence != ConfidenceMedium && result.Confidence != ConfidenceHigh {
		t.Fatalf("expected at least medium confidence, got %s", result.Confidence)
	}
	if !strings.Contains(result.Reason, "tired") || !strings.Contains(result.Reason, "too much") {
		t.Fatalf("reason should cite tired and too much, got %q", result.Reason)
	}
}

func TestClassifyNeutralScenario(t *testing.T) {
	c := newTestClassifier()
	result := c.Classify("Nothing special today.")
	if result.Mood != Neutral {
		t.Fatalf("expected neutral, got %s", result.Mood)
	}
	if result.Confidence == ConfidenceHigh {
		t.Fatalf("expected low or medium confidence, got %s", result.Confidence)
	}
}

func TestClassifySadEmojiScenario(t *testing.T) {
	c := newTestClassifier()
	result := c.Classify("😔 I miss my friends.")
	if result.Mood != Sad {
		t.Fatalf("expected sad, got %s", result.Mood)
	}
	if result.Confidence != ConfidenceHigh {
		t.Fatalf("keyword plus emoji should reach high, got %s", result.Confidence)
	}
}

func TestClassifyCountsDistinctKeywordsOnce(t *testing.T) {
	c := newTestClassifier()
	// "sad" occurs three times but is one distinct keyword: score 2, low.
	result := c.Classify("sad sad sad")
	if result.Mood != Sad {
		t.Fatalf("expected sad, got %s", result.Mood)
	}
	if result.Confidence != ConfidenceLow {
		t.Fatalf("repeated keyword should still score 2 (low), got %s", result.Confidence)
	}
}

func TestDefaultLexiconInvariants(t *testing.T) {
	lexicon := DefaultLexicon()
	for _, category := range Categories {
		entry, ok := lexicon[category]
		if !ok {
			t.Fatalf("category %s missing from lexicon", category)
		}
		if len(entry.Keywords) == 0 {
			t.Fatalf("category %s has no keywords", category)
		}
		seenKeywords := make(map[string]bool)
		for _, keyword := range entry.Keywords {
			if keyword != strings.ToLower(keyword) {
				t.Fatalf("category %s keyword %q is not lowercase", category, keyword)
			}
			if seenKeywords[keyword] {
				t.Fatalf("category %s duplicates keyword %q", category, keyword)
			}
			seenKeywords[keyword] = true
		}
		seenEmojis := make(map[string]bool)
		for _, emoji := range entry.Emojis {
			if seenEmojis[emoji] {
				t.Fatalf("category %s duplicates emoji %q", category, emoji)
			}
			seenEmojis[emoji] = true
		}
	}
}
