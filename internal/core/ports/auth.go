package ports

import (
	"context"
	"time"

	"github.com/Nenad034/isplate-backend/internal/core/domain"
)

// UserRepository extends the generic record repository with the lookups the
// authenticator needs. FindByEmail is a case-sensitive exact match and must
// not return soft-deleted accounts.
type UserRepository interface {
	RecordRepository[*domain.User]
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	Count(ctx context.Context) (int64, error)
}

// AuthService issues and describes sessions.
type AuthService interface {
	// Login verifies credentials and returns a signed session token together
	// with the sanitized user record. On failure it returns
	// domain.ErrInvalidCredentials regardless of whether the account exists.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Me re-reads the principal's user record.
	Me(ctx context.Context, id string) (*domain.User, error)
}
