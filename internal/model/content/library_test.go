package content

import (
	"testing"

	"github.com/moodlift/moodlift/backend/internal/analysis/mood"
)

func TestSeedCoversEveryMoodForEachType(t *testing.T) {
	lib := NewLibrary(Seed())
	for _, contentType := range []Type{TypeJoke, TypeQuote, TypeMusic, TypeGame} {
		for _, category := range mood.Categories {
			if size := lib.PoolSize(contentType, category); size < 3 {
				t.Fatalf("%s/%s pool has %d items, want at least 3", contentType, category, size)
			}
		}
	}
}

func TestSeedImagePoolIsSharedAcrossMoods(t *testing.T) {
	lib := NewLibrary(Seed())
	happy := lib.Candidates(TypeImage, mood.Happy)
	sad := lib.Candidates(TypeImage, mood.Sad)
	if len(happy) == 0 {
		t.Fatal("image pool is empty")
	}
	if len(happy) != len(sad) {
		t.Fatalf("image pool should not vary by mood: %d vs %d", len(happy), len(sad))
	}
	for i := range happy {
		if happy[i].ID != sad[i].ID {
			t.Fatalf("image pool differs at %d: %s vs %s", i, happy[i].ID, sad[i].ID)
		}
	}
}

func TestSeedIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, item := range Seed() {
		if item.ID == "" {
			t.Fatalf("item without ID: %+v", item)
		}
		if seen[item.ID] {
			t.Fatalf("duplicate item ID %s", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestCandidatesReturnsCopy(t *testing.T) {
	lib := NewLibrary(Seed())
	first := lib.Candidates(TypeJoke, mood.Happy)
	first[0].ID = "mutated"
	second := lib.Candidates(TypeJoke, mood.Happy)
	if second[0].ID == "mutated" {
		t.Fatal("Candidates must not expose internal state")
	}
}

func TestParseType(t *testing.T) {
	if _, ok := ParseType("joke"); !ok {
		t.Fatal("joke should parse")
	}
	if _, ok := ParseType("podcast"); ok {
		t.Fatal("podcast should not parse")
	}
}
