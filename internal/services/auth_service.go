package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"content-service/internal/auth"
	"content-service/internal/models"
	"content-service/internal/utils"
)

// AdminStore is the slice of the admin repository the auth flow needs.
type AdminStore interface {
	Count(ctx context.Context) (int64, error)
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	Insert(ctx context.Context, a *models.Admin) error
}

type AuthService struct {
	admins AdminStore
	tokens *auth.TokenManager

	envUsername string
	envPassword string
}

func NewAuthService(admins AdminStore, tokens *auth.TokenManager, envUsername, envPassword string) *AuthService {
	return &AuthService{
		admins:      admins,
		tokens:      tokens,
		envUsername: envUsername,
		envPassword: envPassword,
	}
}

// Login exchanges a username/password pair for a signed session token.
//
// The env-configured admin is checked before any storage access so the
// operator can still log in while the database is down. Only when that
// check fails does the flow touch storage: an empty admin collection
// bootstraps the submitted credentials into the first admin record,
// otherwise the stored hash decides. Unknown user and wrong password
// are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return "", utils.ErrInvalidCredentials
	}

	if s.envUsername != "" && username == s.envUsername && password == s.envPassword {
		return s.tokens.Sign(username, "")
	}

	count, err := s.admins.Count(ctx)
	if err != nil {
		return "", err
	}
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", err
		}
		admin := &models.Admin{
			ID:        uuid.NewString(),
			Username:  username,
			Password:  string(hash),
			CreatedAt: time.Now().UTC(),
		}
		if err := s.admins.Insert(ctx, admin); err != nil {
			return "", err
		}
		return s.tokens.Sign(admin.Username, admin.ID)
	}

	admin, err := s.admins.FindByUsername(ctx, username)
	if errors.Is(err, utils.ErrNotFound) {
		return "", utils.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return "", utils.ErrInvalidCredentials
	}
	return s.tokens.Sign(admin.Username, admin.ID)
}

// Authenticated reports whether either credential carries a valid
// session: the cookie first, then the Authorization header. Bad tokens
// never surface as errors.
func (s *AuthService) Authenticated(cookieToken, authHeader string) bool {
	if cookieToken != "" {
		if _, err := s.tokens.Verify(cookieToken); err == nil {
			return true
		}
	}
	bearer := strings.TrimPrefix(authHeader, "Bearer ")
	if bearer != "" {
		if _, err := s.tokens.Verify(bearer); err == nil {
			return true
		}
	}
	return false
}
