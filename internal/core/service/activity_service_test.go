package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nenad034/isplate-backend/internal/core/domain"
)

type stubActivityRepo struct {
	entries   []*domain.ActivityEntry
	appendErr error
}

func (r *stubActivityRepo) Append(_ context.Context, entry *domain.ActivityEntry) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *stubActivityRepo) List(_ context.Context) ([]*domain.ActivityEntry, error) {
	return r.entries, nil
}

func TestActivityService_Record(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	svc.Record(context.Background(), domain.ActionSoftDelete, "supplier Putnik", "Marko")

	if len(repo.entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(repo.entries))
	}
	entry := repo.entries[0]
	if entry.Action != "Obrisao" {
		t.Fatalf("entry should carry the display label, got %q", entry.Action)
	}
	if entry.Details != "supplier Putnik" || entry.User != "Marko" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.ID == "" || entry.Timestamp.IsZero() {
		t.Fatalf("id and timestamp should be filled in: %+v", entry)
	}
}

// Record is best-effort: a failing store must not panic or surface anywhere.
func TestActivityService_RecordSwallowsFailure(t *testing.T) {
	repo := &stubActivityRepo{appendErr: errors.New("store down")}
	svc := NewActivityService(repo, zerolog.Nop())

	svc.Record(context.Background(), domain.ActionCreate, "supplier Putnik", "Marko")
}

func TestActivityService_Append(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	entry := &domain.ActivityEntry{Action: "Prijava", Details: "marko@isplate.rs", User: "Marko"}
	if err := svc.Append(context.Background(), entry); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if entry.ID == "" || entry.Timestamp.IsZero() {
		t.Fatalf("missing id and timestamp should be filled in")
	}

	// Caller-supplied identity survives.
	at := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	fixed := &domain.ActivityEntry{ID: "log-1", Action: "Izvozio podatke", Timestamp: at}
	if err := svc.Append(context.Background(), fixed); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if fixed.ID != "log-1" || !fixed.Timestamp.Equal(at) {
		t.Fatalf("supplied id and timestamp must not be overwritten: %+v", fixed)
	}

	if err := svc.Append(context.Background(), &domain.ActivityEntry{}); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if len(repo.entries) != 3 {
		t.Fatalf("expected three stored entries, got %d", len(repo.entries))
	}
}
