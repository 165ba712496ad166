package session_test

import (
	"context"
	"testing"

	"github.com/moodlift/moodlift/backend/internal/analysis/mood"
	"github.com/moodlift/moodlift/backend/internal/model/wellness"
	session "github.com/moodlift/moodlift/backend/internal/service/session"
)

func TestServiceGetSession(t *testing.T) {
	svc := session.NewService()
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	got, err := svc.GetSession(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("unexpected session ID: got %s want %s", got.ID, created.ID)
	}
}

func TestServiceGetSessionNotFound(t *testing.T) {
	svc := session.NewService()
	if _, err := svc.GetSession(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for missing session")
	}
}

func TestServiceCheckInHistory(t *testing.T) {
	svc := session.NewService()
	ctx := context.Background()

	created, _ := svc.CreateSession(ctx)
	checkin := wellness.CheckIn{
		SessionID:  created.ID,
		Text:       "feeling good",
		Mood:       mood.Happy,
		Confidence: mood.ConfidenceLow,
		Reason:     "Keywords: good",
	}
	if err := svc.RecordCheckIn(ctx, checkin); err != nil {
		t.Fatalf("RecordCheckIn err: %v", err)
	}

	history, err := svc.History(ctx, created.ID)
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 check-in, got %d", len(history))
	}
	if history[0].Mood != mood.Happy {
		t.Fatalf("unexpected mood %s", history[0].Mood)
	}
	if history[0].ID == "" {
		t.Fatal("check-in should be assigned an ID")
	}
}

func TestServiceRecordCheckInUnknownSession(t *testing.T) {
	svc := session.NewService()
	err := svc.RecordCheckIn(context.Background(), wellness.CheckIn{SessionID: "missing"})
	if err == nil {
		t.Fatal("expected error for unknown session")
	}
}

func TestServiceEndSessionRunsHooks(t *testing.T) {
	svc := session.NewService()
	ctx := context.Background()

	var dropped string
	svc.OnEnd(func(sessionID string) { dropped = sessionID })

	created, _ := svc.CreateSession(ctx)
	if err := svc.EndSession(ctx, created.ID); err != nil {
		t.Fatalf("EndSession err: %v", err)
	}
	if dropped != created.ID {
		t.Fatalf("teardown hook not invoked: got %q want %q", dropped, created.ID)
	}
	if _, err := svc.GetSession(ctx, created.ID); err == nil {
		t.Fatal("session should be gone after EndSession")
	}
}

func TestServiceEndSessionNotFound(t *testing.T) {
	svc := session.NewService()
	if err := svc.EndSession(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for missing session")
	}
}
