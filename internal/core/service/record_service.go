package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Nenad034/isplate-backend/internal/api/metrics"
	"github.com/Nenad034/isplate-backend/internal/core/domain"
	"github.com/Nenad034/isplate-backend/internal/core/ports"
)

// recordService implements the lifecycle shared by suppliers, hotels,
// payments and users: create, overlay-update, soft-delete, restore and
// hard-delete, each followed by exactly one best-effort audit entry.
type recordService[T domain.Resource] struct {
	entity   string // singular label used in audit details and metrics
	repo     ports.RecordRepository[T]
	activity ports.ActivityService
	log      zerolog.Logger
}

// NewRecordService wires the lifecycle service for one entity type. The
// entity name appears in audit lines ("Obrisao supplier") and metric labels.
func NewRecordService[T domain.Resource](entity string, repo ports.RecordRepository[T], activity ports.ActivityService, log zerolog.Logger) ports.RecordService[T] {
	return &recordService[T]{entity: entity, repo: repo, activity: activity, log: log}
}

func (s *recordService[T]) List(ctx context.Context, includeDeleted bool) ([]T, error) {
	return s.repo.List(ctx, includeDeleted)
}

func (s *recordService[T]) Get(ctx context.Context, id string) (T, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *recordService[T]) Create(ctx context.Context, rec T, actor string) (T, error) {
	if rec.ResourceID() == "" {
		rec.SetResourceID(uuid.NewString())
	}
	rec.Meta().ClearDeleted()
	rec.StampCreated(time.Now().UTC())

	if err := s.repo.Insert(ctx, rec); err != nil {
		var zero T
		return zero, err
	}

	s.audit(ctx, domain.ActionCreate, rec, actor)
	return rec, nil
}

// Update overlays caller-supplied fields onto the stored record via apply.
// Identity, creation time and soft-delete metadata are restored afterwards so
// a partial update can never resurrect or delete a record as a side effect.
func (s *recordService[T]) Update(ctx context.Context, id, actor string, apply func(T) error) (T, error) {
	var zero T

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}

	meta := *rec.Meta()
	created := rec.CreatedTime()

	if err := apply(rec); err != nil {
		return zero, fmt.Errorf("apply update: %w", err)
	}

	rec.SetResourceID(id)
	*rec.Meta() = meta
	rec.StampCreated(created)

	if err := s.repo.Replace(ctx, rec); err != nil {
		return zero, err
	}

	s.audit(ctx, domain.ActionUpdate, rec, actor)
	return rec, nil
}

// SoftDelete stamps the record deleted. Deleting an already soft-deleted
// record re-stamps the timestamp and actor rather than erroring.
func (s *recordService[T]) SoftDelete(ctx context.Context, id, actor string) error {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	rec.Meta().MarkDeleted(actor, time.Now().UTC())
	if err := s.repo.Replace(ctx, rec); err != nil {
		return err
	}

	s.audit(ctx, domain.ActionSoftDelete, rec, actor)
	return nil
}

// Restore returns a soft-deleted record to the active state. Restoring an
// already active record succeeds without touching storage.
func (s *recordService[T]) Restore(ctx context.Context, id, actor string) error {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if rec.Meta().Active() {
		return nil
	}

	rec.Meta().ClearDeleted()
	if err := s.repo.Replace(ctx, rec); err != nil {
		return err
	}

	s.audit(ctx, domain.ActionRestore, rec, actor)
	return nil
}

// HardDelete removes the record permanently regardless of its current state.
// A second call on the same id succeeds as a no-op.
func (s *recordService[T]) HardDelete(ctx context.Context, id, actor string) error {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}

	s.audit(ctx, domain.ActionHardDelete, rec, actor)
	return nil
}

func (s *recordService[T]) audit(ctx context.Context, kind domain.ActionKind, rec T, actor string) {
	metrics.RecordMutationsTotal.WithLabelValues(s.entity, string(kind)).Inc()

	detail := rec.DisplayName()
	if detail == "" {
		detail = rec.ResourceID()
	}
	s.activity.Record(ctx, kind, fmt.Sprintf("%s %s", s.entity, detail), actor)

	s.log.Info().
		Str("entity", s.entity).
		Str("action", string(kind)).
		Str("id", rec.ResourceID()).
		Str("actor", actor).
		Msg("record mutated")
}
