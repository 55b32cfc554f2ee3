// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"profilesync/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the server side of the profile store: the authoritative
// record every client session reconciles against.
type ProfileUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	// UpdateProfile normalizes and validates patch, then saves it.
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch *entity.ProfilePatch) (*entity.Profile, error)
	// UpdateLinksOrder stores order and returns what was stored.
	UpdateLinksOrder(ctx context.Context, userID uuid.UUID, order []entity.LinkField) ([]entity.LinkField, error)
	AddFriend(ctx context.Context, userID, friendID uuid.UUID) (*entity.Profile, error)
	RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) (*entity.Profile, error)
	SubscriptionStatus(ctx context.Context, userID uuid.UUID) (*entity.SubscriptionStatus, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to create a profile.
type RegisterInput struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email"`
}

// --- Output DTOs ---

// AuthOutput carries the credentials issued on registration.
type AuthOutput struct {
	AccessToken string          `json:"accessToken"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	Profile     *entity.Profile `json:"profile"`
}
