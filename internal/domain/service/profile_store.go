// Package service declares the contracts of collaborators that live outside the domain.
package service

import (
	"context"

	"github.com/google/uuid"

	"profilesync/internal/domain/entity"
)

// ProfileStore is the remote, authoritative profile store.
// Errors are *errors.SyncError values whose Kind tells the caller how to react;
// a nil profile from a write means the server confirmed without echoing the record.
type ProfileStore interface {
	// FetchProfile reads the profile of userID.
	FetchProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// WriteScalar sets a single scalar field (name, age, aboutYou, momentCareer, profileImage).
	WriteScalar(ctx context.Context, field entity.Field, value any) (*entity.Profile, error)

	// WriteLinks sets any subset of the link URLs.
	WriteLinks(ctx context.Context, links LinksInput) (*entity.Profile, error)

	// WriteOrder replaces the social links order and returns the order the server stored.
	WriteOrder(ctx context.Context, order []entity.LinkField) ([]entity.LinkField, error)

	// WriteSet replaces a set-valued field. A nil slice clears it.
	WriteSet(ctx context.Context, field entity.Field, values []string) (*entity.Profile, error)

	// WriteLocation sets the location and, optionally, its visibility.
	WriteLocation(ctx context.Context, location string, visibility *entity.Visibility) (*entity.Profile, error)

	// WriteFocus sets the study focus and its dependent fields.
	WriteFocus(ctx context.Context, focus FocusInput) (*entity.Profile, error)

	// SubscriptionStatus reads the plan state. A missing subscription is reported
	// as a not_found SyncError.
	SubscriptionStatus(ctx context.Context) (*entity.SubscriptionStatus, error)
}

// LinksInput is the body of a links update; nil members are omitted.
type LinksInput struct {
	LinkedIn  *string `json:"linkedin,omitempty"`
	GitHub    *string `json:"github,omitempty"`
	Portfolio *string `json:"portfolio,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
}

// FocusInput is the body of a focus update.
type FocusInput struct {
	UserFocus      entity.Focus `json:"userFocus"`
	EducationLevel *string      `json:"educationLevel,omitempty"`
	ContestType    *string      `json:"contestType,omitempty"`
	CollegeCourse  *string      `json:"collegeCourse,omitempty"`
}
