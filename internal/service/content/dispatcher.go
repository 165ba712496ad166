package content

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/moodlift/moodlift/backend/internal/analysis/mood"
	"github.com/moodlift/moodlift/backend/internal/metrics"
	"github.com/moodlift/moodlift/backend/internal/model/content"
)

const (
	// Product rule: a "more" request always yields between 2 and 5 items.
	MinBatchSize = 2
	MaxBatchSize = 5
)

// Batch is the result of one dispatch. PoolReset tells the UI that previously
// seen content became eligible again; PoolExhausted flags a pool too small to
// honor the minimum batch size.
type Batch struct {
	Items         []content.Item `json:"items"`
	Count         int            `json:"count"`
	PoolReset     bool           `json:"poolReset"`
	PoolExhausted bool           `json:"poolExhausted"`
}

// Dispatcher pulls candidates from the catalog, filters them through the
// ledger, and returns right-sized deduplicated batches.
type Dispatcher struct {
	catalog *Catalog
	ledger  *Ledger
	log     zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewDispatcher wires a dispatcher over the catalog and ledger.
func NewDispatcher(catalog *Catalog, ledger *Ledger, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		catalog: catalog,
		ledger:  ledger,
		log:     log,
		locks:   make(map[string]*sync.Mutex),
	}
}

// lockFor serializes batch assembly per (session, contentType) so two
// concurrent "more" requests cannot claim the same not-yet-recorded item.
func (d *Dispatcher) lockFor(sessionID string, t content.Type) *sync.Mutex {
	key := sessionID + "|" + string(t)
	d.mu.Lock()
	defer d.mu.Unlock()
	lock, ok := d.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		d.locks[key] = lock
	}
	return lock
}

// GetBatch returns a deduplicated batch of requested size, clamped to the
// 2..5 product bound. When the undelivered remainder cannot cover the request
// and the pool is past the refresh threshold, the ledger is reset and
// previously seen items become eligible again; the reset is reported so the
// UI can explain repeats. Delivered IDs are recorded only after the batch is
// fully assembled.
func (d *Dispatcher) GetBatch(ctx context.Context, sessionID string, t content.Type, m mood.Category, requested int) Batch {
	if requested < MinBatchSize {
		requested = MinBatchSize
	}
	if requested > MaxBatchSize {
		requested = MaxBatchSize
	}

	// The live fetch happens before the critical section; only the
	// filter-and-record sequence needs to be atomic. The live source is asked
	// for exactly the requested count: the catalog appends the full static
	// pool behind the live items, so deduplication headroom comes for free
	// without multiplying provider calls.
	candidates := dedupeByID(d.catalog.Candidates(ctx, t, m, requested))
	poolSize := d.catalog.PoolSize(t, m)

	lock := d.lockFor(sessionID, t)
	lock.Lock()
	defer lock.Unlock()

	var batch Batch
	unseen := d.ledger.FilterUnseen(sessionID, t, candidates)
	if len(unseen) < requested && d.ledger.ShouldRefresh(sessionID, t, poolSize) {
		d.ledger.Reset(sessionID, t)
		batch.PoolReset = true
		metrics.RecordPoolReset(string(t))
		d.log.Info().
			Str("sessionId", sessionID).
			Str("contentType", string(t)).
			Str("mood", string(m)).
			Msg("content pool refreshed for session")
		unseen = candidates
	}

	items := unseen
	if len(items) > requested {
		items = items[:requested]
	}
	// A tiny pool can run dry before reaching the refresh threshold: with 3
	// items, one batch of 2 leaves a single unseen item at 2/3 delivered.
	// The remainder is returned flagged rather than resetting early, which
	// would repeat content the user just saw.
	if len(items) < MinBatchSize {
		batch.PoolExhausted = true
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	d.ledger.RecordDelivered(sessionID, t, ids)
	metrics.RecordBatch(string(t))

	batch.Items = items
	batch.Count = len(items)
	return batch
}

// dedupeByID drops duplicate IDs within one candidate sequence, keeping the
// first occurrence. Live results can collide with themselves across slots.
func dedupeByID(items []content.Item) []content.Item {
	seen := make(map[string]struct{}, len(items))
	out := make([]content.Item, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}
