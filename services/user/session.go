package user

import (
	"context"
	"errors"
	"fmt"

	"jeevanrakshak/models"
	"jeevanrakshak/utils"

	"go.uber.org/zap"
)

// StartSession exchanges a Firebase ID token for a dashboard session. The role
// in the session comes from the stored profile, never from the client.
func (s *DefaultUserService) StartSession(ctx context.Context, idToken string) (*SessionResponse, error) {
	token, err := s.Verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.logger().Info("rejected identity token", zap.Error(err))
		return nil, ErrInvalidIDToken
	}

	profile, err := s.Repo.GetByUID(ctx, token.UID)
	if err != nil {
		return nil, err
	}

	role, known := models.ParseRole(profile.Role)
	if !known {
		s.logger().Warn("unknown role claim, treating as citizen",
			zap.String("uid", profile.UID), zap.String("role", profile.Role))
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = utils.DefaultSessionTTL
	}
	signed, err := utils.GenerateToken(s.Secret, profile.UID, profile.Email, role.Claim(), ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	if err := s.Sessions.Save(ctx, utils.HashToken(signed), profile.UID, ttl); err != nil {
		return nil, err
	}

	s.logger().Info("session started", zap.String("uid", profile.UID), zap.String("role", role.String()))
	return &SessionResponse{
		Token:     signed,
		ExpiresAt: s.now().Add(ttl),
		Role:      role.Claim(),
		Profile:   profile,
	}, nil
}

func (s *DefaultUserService) EndSession(ctx context.Context, token string) error {
	return s.Sessions.Delete(ctx, utils.HashToken(token))
}

// Authenticate resolves a session token. Revoked, expired or forged tokens
// yield ErrInvalidSession; a token whose role claim is not recognised resolves
// to a citizen session.
func (s *DefaultUserService) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	claims, err := utils.ExtractClaims(s.Secret, token)
	if err != nil {
		return nil, ErrInvalidSession
	}

	live, err := s.Sessions.Exists(ctx, utils.HashToken(token))
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, ErrInvalidSession
	}

	role, known := models.ParseRole(claims.Role)
	if !known {
		s.logger().Warn("unknown role claim, treating as citizen",
			zap.String("uid", claims.Subject), zap.String("role", claims.Role))
	}
	return &models.Session{UserID: claims.Subject, Email: claims.Email, Role: role}, nil
}

// IsInvalidSession reports whether err means the caller must sign in again.
func IsInvalidSession(err error) bool {
	return errors.Is(err, ErrInvalidSession) || errors.Is(err, ErrInvalidIDToken)
}
