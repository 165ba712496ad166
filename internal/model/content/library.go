package content

import (
	"github.com/moodlift/moodlift/backend/internal/analysis/mood"
)

// Library is the static content store, keyed by content type and mood.
// Images live in a single pool shared across moods.
type Library struct {
	byType map[Type]map[mood.Category][]Item
	images []Item
}

// NewLibrary indexes the supplied items. Image items go into the shared pool
// regardless of mood; everything else is bucketed by (type, mood).
func NewLibrary(items []Item) *Library {
	lib := &Library{byType: make(map[Type]map[mood.Category][]Item)}
	for _, item := range items {
		if item.Type == TypeImage {
			lib.images = append(lib.images, item)
			continue
		}
		byMood, ok := lib.byType[item.Type]
		if !ok {
			byMood = make(map[mood.Category][]Item)
			lib.byType[item.Type] = byMood
		}
		byMood[item.Mood] = append(byMood[item.Mood], item)
	}
	return lib
}

// Candidates returns a copy of the static pool for the given pair.
func (l *Library) Candidates(t Type, m mood.Category) []Item {
	return append([]Item(nil), l.pool(t, m)...)
}

// PoolSize reports how many static items exist for the given pair.
func (l *Library) PoolSize(t Type, m mood.Category) int {
	return len(l.pool(t, m))
}

func (l *Library) pool(t Type, m mood.Category) []Item {
	if t == TypeImage {
		return l.images
	}
	byMood, ok := l.byType[t]
	if !ok {
		return nil
	}
	return byMood[m]
}
