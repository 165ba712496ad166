package mood

import (
	analysis "github.com/moodlift/moodlift/backend/internal/analysis/mood"
	"github.com/moodlift/moodlift/backend/internal/metrics"
)

// Guidance ties a classification to the canned encouragement lines for the
// resulting mood. Content batches are requested separately, per content type.
type Guidance struct {
	Classification analysis.Result `json:"classification"`
	Suggestions    []string        `json:"suggestions"`
}

// Service is the mood check-in orchestrator: classify, then look up the
// suggestion table. Pure composition over the classifier.
type Service struct {
	classifier  *analysis.Classifier
	suggestions map[analysis.Category][]string
}

// NewService builds the orchestrator over the given classifier.
func NewService(classifier *analysis.Classifier) *Service {
	return &Service{
		classifier:  classifier,
		suggestions: defaultSuggestions(),
	}
}

// HandleMoodInput classifies the text and attaches mood-keyed suggestions.
func (s *Service) HandleMoodInput(text string) Guidance {
	result := s.classifier.Classify(text)
	metrics.RecordClassification(string(result.Mood), string(result.Confidence))
	return Guidance{
		Classification: result,
		Suggestions:    append([]string(nil), s.suggestions[result.Mood]...),
	}
}

func defaultSuggestions() map[analysis.Category][]string {
	return map[analysis.Category][]string{
		analysis.Happy: {
			"Love that energy! Want a joke to keep the streak going?",
			"Ride the wave — maybe share the good news with someone.",
		},
		analysis.Calm: {
			"Nice and steady. Some mellow music could keep you there.",
			"A calm moment is a great time for a short stretch.",
		},
		analysis.Neutral: {
			"An ordinary day is still a day. Fancy a random joke?",
			"Sometimes a small spark helps — try a quick mini-game.",
		},
		analysis.Sad: {
			"That sounds heavy. Here if you want something gentle to lift you.",
			"A comforting song or a soft joke might help a little.",
		},
		analysis.Angry: {
			"Fair enough — that would frustrate anyone. Want to vent it out with a quick game?",
			"A short walk or a silly joke can take the edge off.",
		},
		analysis.Anxious: {
			"Let's slow things down. A grounding exercise could help.",
			"Breathe first, scroll later. Calm music is one tap away.",
		},
		analysis.Stressed: {
			"You're carrying a lot. A two-minute reset might be worth it.",
			"Permission to take a break: granted. Try the shoulder-drop game.",
		},
	}
}
