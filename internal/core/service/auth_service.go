package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Nenad034/isplate-backend/internal/api/metrics"
	"github.com/Nenad034/isplate-backend/internal/core/domain"
	"github.com/Nenad034/isplate-backend/internal/core/ports"
)

// TokenTTL is the fixed session length. There is no refresh mechanism; an
// expired token requires a new login. Role changes do not take effect until
// the token is reissued — accepted staleness, bounded by this window.
const TokenTTL = 8 * time.Hour

// SessionClaims is the JWT payload. It carries everything needed to rebuild
// a principal without re-reading the user record.
type SessionClaims struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// AuthService validates credentials and issues HS256 session tokens.
type AuthService struct {
	users     ports.UserRepository
	activity  ports.ActivityService
	jwtSecret string
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, activity ports.ActivityService, jwtSecret string, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, activity: activity, jwtSecret: jwtSecret, log: log}
}

// Login authenticates by exact-match email lookup and constant-time digest
// comparison. Missing account, missing digest and wrong password all collapse
// into ErrInvalidCredentials so the response does not reveal which failed.
// On success lastLogin is updated before the token is signed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if user.PasswordDigest == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		// Non-fatal: the session is still valid without the stamp.
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	} else {
		user.LastLogin = &now
	}

	token, err := s.signToken(user, now)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.activity.Record(ctx, domain.ActionLogin, user.Email, user.Name)
	s.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("login succeeded")

	return token, user, nil
}

// Me re-reads the principal's record so /me always reflects current storage,
// not the possibly stale token claims.
func (s *AuthService) Me(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) signToken(user *domain.User, now time.Time) (string, error) {
	claims := SessionClaims{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
