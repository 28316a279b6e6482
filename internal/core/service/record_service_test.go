package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nenad034/isplate-backend/internal/core/domain"
)

type stubRecordRepo struct {
	records map[string]*domain.Supplier

	insertErr  error
	replaceErr error
	replaced   int
}

func newStubRecordRepo() *stubRecordRepo {
	return &stubRecordRepo{records: make(map[string]*domain.Supplier)}
}

func cloneSupplier(s *domain.Supplier) *domain.Supplier {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

func (r *stubRecordRepo) List(_ context.Context, includeDeleted bool) ([]*domain.Supplier, error) {
	var out []*domain.Supplier
	for _, s := range r.records {
		if !includeDeleted && !s.Active() {
			continue
		}
		out = append(out, cloneSupplier(s))
	}
	return out, nil
}

func (r *stubRecordRepo) FindByID(_ context.Context, id string) (*domain.Supplier, error) {
	s, ok := r.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneSupplier(s), nil
}

func (r *stubRecordRepo) Insert(_ context.Context, rec *domain.Supplier) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	if _, exists := r.records[rec.ID]; exists {
		return domain.ErrConflict
	}
	r.records[rec.ID] = cloneSupplier(rec)
	return nil
}

func (r *stubRecordRepo) Replace(_ context.Context, rec *domain.Supplier) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	if _, exists := r.records[rec.ID]; !exists {
		return domain.ErrNotFound
	}
	r.replaced++
	r.records[rec.ID] = cloneSupplier(rec)
	return nil
}

func (r *stubRecordRepo) Remove(_ context.Context, id string) error {
	delete(r.records, id)
	return nil
}

type recordedEntry struct {
	kind    domain.ActionKind
	details string
	actor   string
}

type stubActivity struct {
	recorded  []recordedEntry
	appendErr error
}

func (a *stubActivity) Record(_ context.Context, kind domain.ActionKind, details, actor string) {
	if a.appendErr != nil {
		return
	}
	a.recorded = append(a.recorded, recordedEntry{kind: kind, details: details, actor: actor})
}

func (a *stubActivity) Append(_ context.Context, entry *domain.ActivityEntry) error {
	return a.appendErr
}

func (a *stubActivity) List(_ context.Context) ([]*domain.ActivityEntry, error) {
	return nil, nil
}

func newSupplierService(repo *stubRecordRepo, activity *stubActivity) *recordService[*domain.Supplier] {
	svc := NewRecordService[*domain.Supplier]("supplier", repo, activity, zerolog.Nop())
	return svc.(*recordService[*domain.Supplier])
}

func TestRecordService_Create_AssignsIDAndAudits(t *testing.T) {
	repo := newStubRecordRepo()
	activity := &stubActivity{}
	svc := newSupplierService(repo, activity)

	created, err := svc.Create(context.Background(), &domain.Supplier{Name: "Putnik"}, "Marko")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp")
	}
	if !created.Active() {
		t.Fatalf("new record must be active")
	}

	if len(activity.recorded) != 1 {
		t.Fatalf("expected one audit entry, got %d", len(activity.recorded))
	}
	entry := activity.recorded[0]
	if entry.kind != domain.ActionCreate || entry.actor != "Marko" {
		t.Fatalf("unexpected audit entry: %+v", entry)
	}
	if !strings.Contains(entry.details, "Putnik") {
		t.Fatalf("audit details should name the record, got %q", entry.details)
	}
}

func TestRecordService_Create_KeepsSuppliedID(t *testing.T) {
	repo := newStubRecordRepo()
	svc := newSupplierService(repo, &stubActivity{})

	created, err := svc.Create(context.Background(), &domain.Supplier{ID: "sup-1", Name: "Putnik"}, "Marko")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != "sup-1" {
		t.Fatalf("supplied id should survive, got %s", created.ID)
	}
}

func TestRecordService_Create_InsertErrorSkipsAudit(t *testing.T) {
	repo := newStubRecordRepo()
	repo.insertErr = domain.ErrConflict
	activity := &stubActivity{}
	svc := newSupplierService(repo, activity)

	if _, err := svc.Create(context.Background(), &domain.Supplier{Name: "Putnik"}, "Marko"); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(activity.recorded) != 0 {
		t.Fatalf("failed mutation must not be audited")
	}
}

func TestRecordService_Update_PreservesIdentityAndLifecycle(t *testing.T) {
	repo := newStubRecordRepo()
	created := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	repo.records["sup-1"] = &domain.Supplier{ID: "sup-1", Name: "Putnik", Email: "old@putnik.rs", CreatedAt: created}
	svc := newSupplierService(repo, &stubActivity{})

	updated, err := svc.Update(context.Background(), "sup-1", "Marko", func(s *domain.Supplier) error {
		s.ID = "hijacked"
		s.Email = "new@putnik.rs"
		s.CreatedAt = time.Now()
		s.MarkDeleted("nobody", time.Now())
		return nil
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ID != "sup-1" {
		t.Fatalf("id must survive the overlay, got %s", updated.ID)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Fatalf("creation time must survive the overlay, got %v", updated.CreatedAt)
	}
	if !updated.Active() {
		t.Fatalf("an update must not soft-delete the record")
	}
	if updated.Email != "new@putnik.rs" {
		t.Fatalf("changed field lost: %s", updated.Email)
	}
	if repo.records["sup-1"].Email != "new@putnik.rs" {
		t.Fatalf("update not persisted")
	}
}

func TestRecordService_Update_ApplyErrorAbortsWrite(t *testing.T) {
	repo := newStubRecordRepo()
	repo.records["sup-1"] = &domain.Supplier{ID: "sup-1", Name: "Putnik"}
	svc := newSupplierService(repo, &stubActivity{})

	boom := errors.New("bad payload")
	if _, err := svc.Update(context.Background(), "sup-1", "Marko", func(*domain.Supplier) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected apply error, got %v", err)
	}
	if repo.replaced != 0 {
		t.Fatalf("nothing should be written when apply fails")
	}
}

func TestRecordService_Update_MissingRecord(t *testing.T) {
	svc := newSupplierService(newStubRecordRepo(), &stubActivity{})

	if _, err := svc.Update(context.Background(), "ghost", "Marko", func(*domain.Supplier) error { return nil }); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordService_SoftDeleteAndRestore(t *testing.T) {
	repo := newStubRecordRepo()
	repo.records["sup-1"] = &domain.Supplier{ID: "sup-1", Name: "Putnik"}
	activity := &stubActivity{}
	svc := newSupplierService(repo, activity)

	if err := svc.SoftDelete(context.Background(), "sup-1", "Marko"); err != nil {
		t.Fatalf("SoftDelete returned error: %v", err)
	}
	stored := repo.records["sup-1"]
	if stored.Active() {
		t.Fatalf("record should be soft-deleted")
	}
	if stored.DeletedBy == nil || *stored.DeletedBy != "Marko" {
		t.Fatalf("deletedBy not stamped")
	}

	// Hidden from the default listing, visible with the flag.
	visible, _ := svc.List(context.Background(), false)
	if len(visible) != 0 {
		t.Fatalf("soft-deleted record leaked into default listing")
	}
	all, _ := svc.List(context.Background(), true)
	if len(all) != 1 {
		t.Fatalf("soft-deleted record missing from full listing")
	}

	if err := svc.Restore(context.Background(), "sup-1", "Jovana"); err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	stored = repo.records["sup-1"]
	if !stored.Active() || stored.DeletedAt != nil || stored.DeletedBy != nil {
		t.Fatalf("restore should clear all delete metadata, got %+v", stored.Lifecycle)
	}

	kinds := []domain.ActionKind{activity.recorded[0].kind, activity.recorded[1].kind}
	if kinds[0] != domain.ActionSoftDelete || kinds[1] != domain.ActionRestore {
		t.Fatalf("unexpected audit kinds: %v", kinds)
	}
}

func TestRecordService_SoftDelete_RestampsDeleted(t *testing.T) {
	repo := newStubRecordRepo()
	repo.records["sup-1"] = &domain.Supplier{ID: "sup-1", Name: "Putnik"}
	svc := newSupplierService(repo, &stubActivity{})

	if err := svc.SoftDelete(context.Background(), "sup-1", "Marko"); err != nil {
		t.Fatalf("first SoftDelete returned error: %v", err)
	}
	first := *repo.records["sup-1"].DeletedAt

	time.Sleep(5 * time.Millisecond)
	if err := svc.SoftDelete(context.Background(), "sup-1", "Jovana"); err != nil {
		t.Fatalf("second SoftDelete returned error: %v", err)
	}
	stored := repo.records["sup-1"]
	if *stored.DeletedBy != "Jovana" {
		t.Fatalf("second delete should re-stamp the actor")
	}
	if !stored.DeletedAt.After(first) {
		t.Fatalf("second delete should re-stamp the timestamp")
	}
}

func TestRecordService_Restore_ActiveIsNoop(t *testing.T) {
	repo := newStubRecordRepo()
	repo.records["sup-1"] = &domain.Supplier{ID: "sup-1", Name: "Putnik"}
	activity := &stubActivity{}
	svc := newSupplierService(repo, activity)

	if err := svc.Restore(context.Background(), "sup-1", "Marko"); err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	if repo.replaced != 0 {
		t.Fatalf("restoring an active record must not touch storage")
	}
	if len(activity.recorded) != 0 {
		t.Fatalf("no-op restore must not be audited")
	}
}

func TestRecordService_HardDelete(t *testing.T) {
	repo := newStubRecordRepo()
	repo.records["sup-1"] = &domain.Supplier{ID: "sup-1", Name: "Putnik"}
	activity := &stubActivity{}
	svc := newSupplierService(repo, activity)

	if err := svc.HardDelete(context.Background(), "sup-1", "Marko"); err != nil {
		t.Fatalf("HardDelete returned error: %v", err)
	}
	if _, exists := repo.records["sup-1"]; exists {
		t.Fatalf("record should be gone")
	}
	if activity.recorded[0].kind != domain.ActionHardDelete {
		t.Fatalf("unexpected audit kind: %v", activity.recorded[0].kind)
	}

	// Second call succeeds as a no-op and is not audited again.
	if err := svc.HardDelete(context.Background(), "sup-1", "Marko"); err != nil {
		t.Fatalf("repeat HardDelete returned error: %v", err)
	}
	if len(activity.recorded) != 1 {
		t.Fatalf("no-op hard delete must not be audited")
	}
}

func TestRecordService_AuditFailureDoesNotRollBack(t *testing.T) {
	repo := newStubRecordRepo()
	activity := &stubActivity{appendErr: errors.New("audit store down")}
	svc := newSupplierService(repo, activity)

	created, err := svc.Create(context.Background(), &domain.Supplier{Name: "Putnik"}, "Marko")
	if err != nil {
		t.Fatalf("Create should succeed despite audit failure: %v", err)
	}
	if _, exists := repo.records[created.ID]; !exists {
		t.Fatalf("mutation should be persisted despite audit failure")
	}
}
