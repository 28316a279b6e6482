package ports

import (
	"context"

	"github.com/Nenad034/isplate-backend/internal/core/domain"
)

// RecordService is the lifecycle operation set shared by every managed entity.
// Update loads the current record and hands it to apply, which overlays the
// caller-supplied fields; id, creation time and lifecycle metadata survive the
// overlay untouched.
type RecordService[T domain.Resource] interface {
	List(ctx context.Context, includeDeleted bool) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, rec T, actor string) (T, error)
	Update(ctx context.Context, id string, actor string, apply func(T) error) (T, error)
	SoftDelete(ctx context.Context, id, actor string) error
	Restore(ctx context.Context, id, actor string) error
	HardDelete(ctx context.Context, id, actor string) error
}
