package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"jeevanrakshak/models"

	"go.uber.org/zap"
)

func (s *DefaultUserService) GetProfile(ctx context.Context, uid string) (*models.UserProfile, error) {
	return s.Repo.GetByUID(ctx, uid)
}

// RegisterProfile creates the users/{uid} record for a freshly signed-up
// account. Administrators are provisioned out of band and cannot self-register.
func (s *DefaultUserService) RegisterProfile(ctx context.Context, idToken string, req RegisterRequest) (*models.UserProfile, error) {
	token, err := s.Verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, ErrInvalidIDToken
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "name is required"}
	}

	claim := strings.TrimSpace(req.Role)
	if claim == "" {
		claim = models.RoleClaimCitizen
	}
	role, known := models.ParseRole(claim)
	if !known {
		return nil, &ValidationError{Field: "role", Message: "unknown role " + claim}
	}
	if role == models.RoleAdmin {
		return nil, &ValidationError{Field: "role", Message: "administrator accounts cannot be self-registered"}
	}

	existing, err := s.Repo.GetByUID(ctx, token.UID)
	switch {
	case err == nil && existing != nil:
		return nil, ErrProfileExists
	case err != nil && !errors.Is(err, ErrProfileNotFound):
		return nil, err
	}

	email, _ := token.Claims["email"].(string)
	profile := models.UserProfile{
		UID:       token.UID,
		Name:      name,
		Email:     email,
		Role:      role.Claim(),
		Zone:      strings.TrimSpace(req.Zone),
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}
	if err := s.Repo.Save(ctx, profile); err != nil {
		return nil, err
	}

	s.logger().Info("profile registered", zap.String("uid", profile.UID), zap.String("role", profile.Role))
	return &profile, nil
}
