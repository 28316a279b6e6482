package ports

import (
	"context"

	"github.com/Nenad034/isplate-backend/internal/core/domain"
)

// RecordRepository defines persistence for one lifecycle-managed entity type
// (suppliers, hotels, payments, users). Implementations must treat a missing
// deleted flag as active and return domain.ErrNotFound / domain.ErrConflict
// for unknown and duplicate ids respectively.
type RecordRepository[T domain.Resource] interface {
	// List returns all records; when includeDeleted is false, soft-deleted
	// records are filtered out.
	List(ctx context.Context, includeDeleted bool) ([]T, error)
	FindByID(ctx context.Context, id string) (T, error)
	Insert(ctx context.Context, rec T) error
	// Replace overwrites the stored record identified by rec's id.
	Replace(ctx context.Context, rec T) error
	// Remove physically deletes by id. Removing an absent id is a no-op.
	Remove(ctx context.Context, id string) error
}
