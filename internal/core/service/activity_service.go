package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Nenad034/isplate-backend/internal/api/metrics"
	"github.com/Nenad034/isplate-backend/internal/core/domain"
	"github.com/Nenad034/isplate-backend/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns the audit log service.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Record appends a best-effort audit entry. A failed write never propagates
// to the caller; it is logged and counted so operators still see it.
func (s *activityService) Record(ctx context.Context, kind domain.ActionKind, details, actor string) {
	entry := &domain.ActivityEntry{
		ID:        uuid.NewString(),
		Action:    kind.Label(),
		Details:   details,
		User:      actor,
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		metrics.AuditWriteFailuresTotal.Inc()
		s.log.Error().Err(err).
			Str("action", entry.Action).
			Str("user", actor).
			Msg("audit log write failed")
	}
}

func (s *activityService) Append(ctx context.Context, entry *domain.ActivityEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	return s.repo.Append(ctx, entry)
}

func (s *activityService) List(ctx context.Context) ([]*domain.ActivityEntry, error) {
	return s.repo.List(ctx)
}
