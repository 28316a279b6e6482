package ports

import (
	"context"

	"github.com/Nenad034/isplate-backend/internal/core/domain"
)

// ActivityRepository is the append-only audit store.
type ActivityRepository interface {
	Append(ctx context.Context, entry *domain.ActivityEntry) error
	// List returns all entries in descending timestamp order.
	List(ctx context.Context) ([]*domain.ActivityEntry, error)
}

// ActivityService records audit entries and exposes the log.
type ActivityService interface {
	// Record appends one entry. It never returns an error to the caller of a
	// business mutation; failures are logged and counted instead.
	Record(ctx context.Context, kind domain.ActionKind, details, actor string)
	// Append stores a caller-built entry verbatim (HTTP POST surface).
	Append(ctx context.Context, entry *domain.ActivityEntry) error
	List(ctx context.Context) ([]*domain.ActivityEntry, error)
}
