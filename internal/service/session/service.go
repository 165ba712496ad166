package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/moodlift/moodlift/backend/internal/model/wellness"
)

var ErrSessionNotFound = errors.New("session not found")

// Service encapsulates session lifecycle and mood check-in history.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]wellness.Session
	checkins map[string][]wellness.CheckIn
	onEnd    []func(sessionID string)
}

// NewService bootstraps the in-memory session service suitable for early iterations.
func NewService() *Service {
	return &Service{
		sessions: make(map[string]wellness.Session),
		checkins: make(map[string][]wellness.CheckIn),
	}
}

// OnEnd registers a hook invoked when a session ends, so dependent per-session
// state (e.g. delivered-content ledgers) can be torn down with it.
func (s *Service) OnEnd(fn func(sessionID string)) {
	s.mu.Lock()
	s.onEnd = append(s.onEnd, fn)
	s.mu.Unlock()
}

// CreateSession provisions an anonymous session.
func (s *Service) CreateSession(_ context.Context) (wellness.Session, error) {
	session := wellness.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.checkins[session.ID] = make([]wellness.CheckIn, 0, 8)
	s.mu.Unlock()

	return session, nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (wellness.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return wellness.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// RecordCheckIn appends a mood check-in to the session history.
func (s *Service) RecordCheckIn(_ context.Context, checkin wellness.CheckIn) error {
	if checkin.SessionID == "" {
		return ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[checkin.SessionID]; !ok {
		return ErrSessionNotFound
	}

	checkin.ID = uuid.NewString()
	if checkin.CreatedAt.IsZero() {
		checkin.CreatedAt = time.Now().UTC()
	}

	s.checkins[checkin.SessionID] = append(s.checkins[checkin.SessionID], checkin)
	return nil
}

// History returns stored check-ins for the provided session.
func (s *Service) History(_ context.Context, sessionID string) ([]wellness.CheckIn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	checkins, ok := s.checkins[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]wellness.CheckIn, len(checkins))
	copy(copied, checkins)
	return copied, nil
}

// EndSession destroys a session and fans out to the registered teardown hooks.
func (s *Service) EndSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	if _, ok := s.sessions[sessionID]; !ok {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	delete(s.checkins, sessionID)
	hooks := append([]func(string){}, s.onEnd...)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn(sessionID)
	}
	return nil
}
