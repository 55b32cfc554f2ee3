package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"profilesync/internal/domain/entity"
)

// ErrProfileNotFound is returned when no profile exists for a user.
var ErrProfileNotFound = errors.New("profile not found")

// ErrSubscriptionNotFound is returned when a user never subscribed.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// ProfileRepository is the backend storage of authoritative profiles.
type ProfileRepository interface {
	// FindByUserID retrieves a profile with its friends count.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Create persists a new profile; the generated id is written back.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update saves every column of an existing profile.
	Update(ctx context.Context, profile *entity.Profile) error

	// AddFriend links two users; it is idempotent.
	AddFriend(ctx context.Context, userID, friendID uuid.UUID) error

	// RemoveFriend unlinks two users. It returns ErrFriendNotFound when no link existed.
	RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error

	// FindSubscription returns the user's subscription or ErrSubscriptionNotFound.
	FindSubscription(ctx context.Context, userID uuid.UUID) (*entity.SubscriptionStatus, error)
}

// ErrFriendNotFound is returned when removing a friendship that does not exist.
var ErrFriendNotFound = errors.New("friendship not found")
