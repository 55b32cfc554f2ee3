package usecase

import (
	"context"

	"profilesync/internal/domain/entity"
	"profilesync/internal/domain/service"

	"github.com/google/uuid"
)

// RemoteWrite performs the server half of a mutation. A nil profile with a nil
// error means the server accepted the change without echoing the record.
type RemoteWrite func(ctx context.Context) (*entity.Profile, error)

// ViewChange tells a listener why the view was republished.
type ViewChange string

const (
	ViewLoaded     ViewChange = "loaded"
	ViewOptimistic ViewChange = "optimistic"
	ViewReconciled ViewChange = "reconciled"
	ViewRolledBack ViewChange = "rolled_back"
	ViewRefreshed  ViewChange = "refreshed"
)

// ViewListener is notified after every cache change.
type ViewListener func(change ViewChange, view entity.View)

// ProfileSyncUsecase keeps the local profile projection of one viewing session
// consistent with the remote store under optimistic, possibly failing edits.
// Every failing call returns a *errors.SyncError.
type ProfileSyncUsecase interface {
	// Open starts a session for userID and loads its profile.
	Open(ctx context.Context, userID uuid.UUID) (entity.View, error)
	// Close ends the session. Responses that arrive afterwards are discarded.
	Close()
	// View returns the current snapshot and notification.
	View() entity.View

	// Mutate applies patch locally, then runs write and reconciles or rolls back.
	Mutate(ctx context.Context, patch entity.ProfilePatch, write RemoteWrite) error
	// MutateAsync is Mutate without waiting: when it returns, the optimistic
	// state is already visible; the channel yields the outcome once settled.
	MutateAsync(ctx context.Context, patch entity.ProfilePatch, write RemoteWrite) <-chan error

	UpdateName(ctx context.Context, name string) error
	UpdateAge(ctx context.Context, age int) error
	UpdateAbout(ctx context.Context, text string) error
	UpdateMomentCareer(ctx context.Context, moment string) error
	UpdateProfileImage(ctx context.Context, ref string) error
	UpdateLinks(ctx context.Context, input service.LinksInput) error
	UpdateLocation(ctx context.Context, location string, visibility *entity.Visibility) error
	UpdateFocus(ctx context.Context, input service.FocusInput) error

	// UpdateLinksOrder validates order before anything else happens.
	UpdateLinksOrder(ctx context.Context, order []entity.LinkField) error
	// MoveLink is the drag-and-drop form of UpdateLinksOrder.
	MoveLink(ctx context.Context, from, to int) error

	AddHability(ctx context.Context, label string) error
	RemoveHability(ctx context.Context, label string) error
	SetHabilities(ctx context.Context, labels []string) error

	// HandleExternalEvent applies a realtime event by patching or refetching.
	HandleExternalEvent(ctx context.Context, event entity.ExternalEvent) error
	// SubscriptionStatus reads the plan state; having none is not an error.
	SubscriptionStatus(ctx context.Context) (entity.SubscriptionStatus, error)
}
