package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Nenad034/isplate-backend/internal/core/domain"
	"github.com/Nenad034/isplate-backend/internal/core/ports"
)

// userService manages accounts. It owns password hashing and email
// uniqueness; the soft-delete lifecycle is delegated to the same generic
// record service the other entities use.
type userService struct {
	repo    ports.UserRepository
	records ports.RecordService[*domain.User]
	log     zerolog.Logger
}

func NewUserService(repo ports.UserRepository, records ports.RecordService[*domain.User], log zerolog.Logger) ports.UserService {
	return &userService{repo: repo, records: records, log: log}
}

func (s *userService) List(ctx context.Context, includeDeleted bool) ([]*domain.User, error) {
	return s.records.List(ctx, includeDeleted)
}

// Create hashes the supplied password and stores the account. Duplicate
// emails surface as domain.ErrEmailTaken through the repository's unique
// index rather than a pre-check, so concurrent creates cannot race past it.
func (s *userService) Create(ctx context.Context, in ports.CreateUserInput, actor string) (*domain.User, error) {
	role := in.Role
	if role == 0 {
		role = domain.RoleViewer
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	user := &domain.User{
		ID:    in.ID,
		Name:  in.Name,
		Email: in.Email,
		Role:  role,
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	if in.Password != "" {
		digest, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordDigest = string(digest)
	}

	return s.records.Create(ctx, user, actor)
}

// Update applies partial changes; only non-nil fields are touched. A new
// password is re-hashed, the stored digest is otherwise left as is.
func (s *userService) Update(ctx context.Context, id string, in ports.UpdateUserInput, actor string) (*domain.User, error) {
	return s.records.Update(ctx, id, actor, func(user *domain.User) error {
		if in.Name != nil {
			user.Name = *in.Name
		}
		if in.Email != nil {
			user.Email = *in.Email
		}
		if in.Role != nil {
			if !in.Role.Valid() {
				return domain.ErrInvalidRole
			}
			user.Role = *in.Role
		}
		if in.Password != nil && *in.Password != "" {
			digest, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user.PasswordDigest = string(digest)
		}
		return nil
	})
}

func (s *userService) SoftDelete(ctx context.Context, id, actor string) error {
	return s.records.SoftDelete(ctx, id, actor)
}

func (s *userService) Restore(ctx context.Context, id, actor string) error {
	return s.records.Restore(ctx, id, actor)
}

func (s *userService) HardDelete(ctx context.Context, id, actor string) error {
	return s.records.HardDelete(ctx, id, actor)
}

// SeedAdmin creates the bootstrap administrator when the store is empty so a
// fresh deployment is reachable. Matches the provisioning script shipped with
// the dashboard.
func SeedAdmin(ctx context.Context, repo ports.UserRepository, log zerolog.Logger) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	digest, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		ID:             uuid.NewString(),
		Name:           "Administrator",
		Email:          "admin@isplate.rs",
		PasswordDigest: string(digest),
		Role:           domain.RoleAdmin,
		CreatedAt:      time.Now().UTC(),
	}

	if err := repo.Insert(ctx, admin); err != nil {
		return err
	}

	log.Info().Str("email", admin.Email).Msg("seeded bootstrap admin account")
	return nil
}
