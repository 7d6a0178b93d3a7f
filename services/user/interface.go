package user

import (
	"context"
	"time"

	userRepo "jeevanrakshak/database/repository/user"
	"jeevanrakshak/models"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

type UserService interface {
	// Profiles
	GetProfile(ctx context.Context, uid string) (*models.UserProfile, error)
	RegisterProfile(ctx context.Context, idToken string, req RegisterRequest) (*models.UserProfile, error)

	// Sessions
	StartSession(ctx context.Context, idToken string) (*SessionResponse, error)
	EndSession(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*models.Session, error)
}

// IDTokenVerifier is satisfied by *auth.Client.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Verifier IDTokenVerifier
	Sessions SessionStore
	Secret   []byte
	TTL      time.Duration
	Logger   *zap.Logger
	Now      func() time.Time
}

// RegisterRequest is the self-service part of a profile.
type RegisterRequest struct {
	Name string `json:"name"`
	Zone string `json:"zone"`
	Role string `json:"role"`
}

// SessionResponse is returned to the dashboard after sign-in.
type SessionResponse struct {
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expiresAt"`
	Role      string              `json:"role"`
	Profile   *models.UserProfile `json:"profile"`
}

func (s *DefaultUserService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultUserService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
