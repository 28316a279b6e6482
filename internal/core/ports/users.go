package ports

import (
	"context"

	"github.com/Nenad034/isplate-backend/internal/core/domain"
)

// CreateUserInput carries the admin-supplied fields for a new account.
// Role defaults to Viewer when zero.
type CreateUserInput struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// UpdateUserInput applies partial changes; nil pointers leave the stored
// field unchanged. A non-nil Password is re-hashed before storage.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *domain.Role
}

// UserService manages accounts. Lifecycle operations behave exactly as for
// the other record types; authorization (Admin only) is enforced at the
// HTTP layer.
type UserService interface {
	List(ctx context.Context, includeDeleted bool) ([]*domain.User, error)
	Create(ctx context.Context, in CreateUserInput, actor string) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput, actor string) (*domain.User, error)
	SoftDelete(ctx context.Context, id, actor string) error
	Restore(ctx context.Context, id, actor string) error
	HardDelete(ctx context.Context, id, actor string) error
}
