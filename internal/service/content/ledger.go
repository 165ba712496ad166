package content

import (
	"sync"

	"github.com/moodlift/moodlift/backend/internal/model/content"
)

// refreshThreshold is the delivered fraction of a pool past which the ledger
// is eligible for a reset. Preserved from the product behavior: availability
// wins over a strict no-repeat guarantee once a pool is nearly exhausted.
const refreshThreshold = 0.8

// Ledger tracks which content item IDs have been delivered, per session and
// content type. One user's state never affects another's: every key includes
// the session ID.
type Ledger struct {
	mu        sync.RWMutex
	delivered map[string]map[content.Type]map[string]struct{}
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{delivered: make(map[string]map[content.Type]map[string]struct{})}
}

// FilterUnseen returns the subsequence of candidates whose IDs have not been
// delivered for (sessionID, contentType), preserving candidate order.
func (l *Ledger) FilterUnseen(sessionID string, t content.Type, candidates []content.Item) []content.Item {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := l.delivered[sessionID][t]
	unseen := make([]content.Item, 0, len(candidates))
	for _, item := range candidates {
		if _, ok := seen[item.ID]; !ok {
			unseen = append(unseen, item)
		}
	}
	return unseen
}

// RecordDelivered marks the given IDs as delivered. Recording an ID twice has
// no additional effect.
func (l *Ledger) RecordDelivered(sessionID string, t content.Type, ids []string) {
	if len(ids) == 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	byType, ok := l.delivered[sessionID]
	if !ok {
		byType = make(map[content.Type]map[string]struct{})
		l.delivered[sessionID] = byType
	}
	seen, ok := byType[t]
	if !ok {
		seen = make(map[string]struct{})
		byType[t] = seen
	}
	for _, id := range ids {
		seen[id] = struct{}{}
	}
}

// DeliveredCount reports how many distinct IDs have been delivered for the pair.
func (l *Ledger) DeliveredCount(sessionID string, t content.Type) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.delivered[sessionID][t])
}

// ShouldRefresh reports whether the delivered share of the pool has reached
// the refresh threshold.
func (l *Ledger) ShouldRefresh(sessionID string, t content.Type, totalPoolSize int) bool {
	if totalPoolSize <= 0 {
		return false
	}
	return float64(l.DeliveredCount(sessionID, t))/float64(totalPoolSize) >= refreshThreshold
}

// Reset clears the ledger for (sessionID, contentType) so the full pool
// becomes eligible again.
func (l *Ledger) Reset(sessionID string, t content.Type) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if byType, ok := l.delivered[sessionID]; ok {
		delete(byType, t)
	}
}

// DropSession discards all ledgers owned by a session. Called on session end.
func (l *Ledger) DropSession(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.delivered, sessionID)
}
