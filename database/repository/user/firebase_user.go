package userRepo

import (
	"context"
	"errors"
	"fmt"

	"jeevanrakshak/database"
	"jeevanrakshak/models"

	"firebase.google.com/go/v4/db"
)

const usersPath = "users"

// ErrUserNotFound is returned when users/{uid} is empty.
var ErrUserNotFound = errors.New("user profile not found")

type UserRepository interface {
	GetByUID(ctx context.Context, uid string) (*models.UserProfile, error)
	Save(ctx context.Context, profile models.UserProfile) error
}

type firebaseUserRepo struct {
	users *db.Ref
}

// NewFirebaseUserRepo returns a UserRepository backed by the global realtime database.
func NewFirebaseUserRepo() UserRepository {
	return &firebaseUserRepo{users: database.RealtimeDB.NewRef(usersPath)}
}

func (r *firebaseUserRepo) GetByUID(ctx context.Context, uid string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.users.Child(uid).Get(ctx, &profile); err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", uid, err)
	}
	if profile.Email == "" && profile.Name == "" && profile.Role == "" {
		return nil, ErrUserNotFound
	}
	profile.UID = uid
	return &profile, nil
}

func (r *firebaseUserRepo) Save(ctx context.Context, profile models.UserProfile) error {
	if err := r.users.Child(profile.UID).Set(ctx, profile); err != nil {
		return fmt.Errorf("failed to save user %s: %w", profile.UID, err)
	}
	return nil
}
