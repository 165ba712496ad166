package content

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/moodlift/moodlift/backend/internal/analysis/mood"
	"github.com/moodlift/moodlift/backend/internal/metrics"
	"github.com/moodlift/moodlift/backend/internal/model/content"
)

// Catalog assembles candidate items per (contentType, mood): live provider
// results first when a provider is configured and healthy, always backed by
// the static library. Provider failures never reach the caller.
type Catalog struct {
	library *content.Library
	live    map[content.Type]LiveSource
	log     zerolog.Logger
}

// NewCatalog wires the static library with optional live sources. Passing a
// nil source leaves that content type static-only.
func NewCatalog(library *content.Library, jokes, quotes, images LiveSource, log zerolog.Logger) *Catalog {
	live := make(map[content.Type]LiveSource)
	if jokes != nil {
		live[content.TypeJoke] = jokes
	}
	if quotes != nil {
		live[content.TypeQuote] = quotes
	}
	if images != nil {
		live[content.TypeImage] = images
	}
	return &Catalog{library: library, live: live, log: log}
}

// Candidates returns an ordered candidate sequence for the pair, at least the
// full static pool, with live items ahead of it when the fetch succeeded.
func (c *Catalog) Candidates(ctx context.Context, t content.Type, m mood.Category, desired int) []content.Item {
	static := c.library.Candidates(t, m)

	source, ok := c.live[t]
	if !ok {
		return static
	}

	fetched, err := source.Fetch(ctx, m, desired)
	candidates, fellBack := resolveFetch(fetched, err, desired, static)
	if fellBack {
		metrics.RecordProviderFallback(string(t))
		c.log.Warn().
			Err(err).
			Str("contentType", string(t)).
			Str("mood", string(m)).
			Int("liveItems", len(fetched)).
			Msg("live provider degraded, substituting static content")
	}
	return candidates
}

// PoolSize reports the static pool size for the pair. Live items are
// transient and unbounded, so only the static pool counts toward the
// refresh threshold.
func (c *Catalog) PoolSize(t content.Type, m mood.Category) int {
	return c.library.PoolSize(t, m)
}

// resolveFetch is the fallback decision as a pure function: live items are
// kept when present, the static pool always follows so short or failed
// fetches are topped up slot by slot. The flag reports whether any static
// substitution was forced by a degraded fetch.
func resolveFetch(live []content.Item, err error, desired int, fallback []content.Item) ([]content.Item, bool) {
	if err != nil || len(live) == 0 {
		return fallback, true
	}
	combined := make([]content.Item, 0, len(live)+len(fallback))
	combined = append(combined, live...)
	combined = append(combined, fallback...)
	return combined, len(live) < desired
}
