package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"profilesync/config"
	deliverycontext "profilesync/internal/delivery/context"
	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/domain/repository"
	"profilesync/internal/domain/service"
	"profilesync/internal/errors"
	"profilesync/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxAge = 150

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Tokens    service.TokenService
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	tokens    service.TokenService
	publisher service.EventPublisher
	maxAbout  int
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	maxAbout := 0
	if params.Config != nil && params.Config.Profile != nil {
		maxAbout = params.Config.Profile.MaxAboutLength
	}

	return &profileService{
		txManager: params.TxManager,
		tokens:    params.Tokens,
		publisher: params.Publisher,
		maxAbout:  maxAbout,
		logger:    params.Logger,
	}
}

// Register creates a profile and issues its first access token.
func (srv *profileService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	profile := &entity.Profile{
		Name:               strings.TrimSpace(input.Name),
		Email:              strings.ToLower(strings.TrimSpace(input.Email)),
		LocationVisibility: entity.VisibilityPublic,
	}
	if profile.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProfileRepo().Create(ctx, profile)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register profile")
	}

	token, expiresAt, err := srv.tokens.GenerateAccessToken(profile.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("Profile registered", slog.String("userID", profile.UserID.String()))

	return &usecase.AuthOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Profile:     profile,
	}, nil
}

// GetProfile retrieves the profile with its friends count.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	srv.log(ctx).Debug("Getting profile", slog.String("userID", userID.String()))

	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findProfile(ctx, repoFactory.ProfileRepo(), userID)
		if err != nil {
			return err
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// UpdateProfile normalizes and validates patch, then saves it.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, patch *entity.ProfilePatch) (*entity.Profile, error) {
	normalized, err := srv.normalizePatch(*patch)
	if err != nil {
		return nil, err
	}
	if normalized.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("nothing to update")
	}

	srv.log(ctx).Info("Updating profile",
		slog.String("userID", userID.String()),
		slog.Any("fields", normalized.Fields()),
	)

	var profile *entity.Profile

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		// 1. Find the profile
		found, err := findProfile(ctx, profileRepo, userID)
		if err != nil {
			return err
		}

		// 2. Apply the patch and check the resulting skill list
		normalized.ApplyTo(found)
		if v := entity.ValidateHabilities(found.Habilities); v != nil {
			return domainerrors.ErrInvalidHabilities.WithDetails(v.Rule)
		}

		// 3. Save
		if err := profileRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.publish(ctx, entity.EventProfileUpdated, userID, nil, entity.EventPayload{})

	return profile, nil
}

// UpdateLinksOrder stores order and returns what was stored.
func (srv *profileService) UpdateLinksOrder(ctx context.Context, userID uuid.UUID, order []entity.LinkField) ([]entity.LinkField, error) {
	if v := entity.ValidateLinksOrder(order); v != nil {
		return nil, domainerrors.ErrInvalidLinksOrder.WithDetails(v.Detail)
	}

	var stored []entity.LinkField

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		found, err := findProfile(ctx, profileRepo, userID)
		if err != nil {
			return err
		}

		found.SocialLinksOrder = order
		if err := profileRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update links order")
		}
		stored = found.SocialLinksOrder

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update links order")
	}

	srv.publish(ctx, entity.EventProfileUpdated, userID, nil, entity.EventPayload{})

	return stored, nil
}

// AddFriend links two users and tells both of them their new friends count.
func (srv *profileService) AddFriend(ctx context.Context, userID, friendID uuid.UUID) (*entity.Profile, error) {
	return srv.changeFriendship(ctx, userID, friendID, entity.EventFriendAccepted,
		func(repo repository.ProfileRepository) error {
			return repo.AddFriend(ctx, userID, friendID)
		})
}

// RemoveFriend unlinks two users and tells both of them their new friends count.
func (srv *profileService) RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) (*entity.Profile, error) {
	return srv.changeFriendship(ctx, userID, friendID, entity.EventFriendRemoved,
		func(repo repository.ProfileRepository) error {
			if err := repo.RemoveFriend(ctx, userID, friendID); err != nil {
				if errors.Is(err, repository.ErrFriendNotFound) {
					return domainerrors.ErrFriendNotFound
				}

				return err
			}

			return nil
		})
}

func (srv *profileService) changeFriendship(
	ctx context.Context,
	userID, friendID uuid.UUID,
	kind entity.ExternalEventKind,
	change func(repo repository.ProfileRepository) error,
) (*entity.Profile, error) {
	if userID == friendID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cannot befriend yourself")
	}

	var user, friend *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		// 1. Both ends must exist
		if _, err := findProfile(ctx, profileRepo, friendID); err != nil {
			return err
		}

		// 2. Change the link
		if err := change(profileRepo); err != nil {
			return errors.Wrap(err, "failed to change friendship")
		}

		// 3. Read back both counts
		var err error
		if user, err = findProfile(ctx, profileRepo, userID); err != nil {
			return err
		}
		if friend, err = findProfile(ctx, profileRepo, friendID); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to change friendship")
	}

	srv.publish(ctx, kind, userID, &friendID, entity.EventPayload{FriendsCount: entity.Ptr(user.FriendsCount)})
	srv.publish(ctx, kind, friendID, &userID, entity.EventPayload{FriendsCount: entity.Ptr(friend.FriendsCount)})

	return user, nil
}

// SubscriptionStatus reads the user's plan.
func (srv *profileService) SubscriptionStatus(ctx context.Context, userID uuid.UUID) (*entity.SubscriptionStatus, error) {
	var status *entity.SubscriptionStatus

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProfileRepo().FindSubscription(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrSubscriptionNotFound) {
				return domainerrors.ErrSubscriptionNotFound
			}

			return errors.Wrap(err, "failed to find subscription")
		}
		status = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get subscription status")
	}

	return status, nil
}

// normalizePatch trims text, completes link URLs and rejects values the store
// must never hold. Server-owned fields are dropped.
func (srv *profileService) normalizePatch(patch entity.ProfilePatch) (entity.ProfilePatch, error) {
	patch.FriendsCount = nil

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return patch, domainerrors.ErrValidationFailed.WithDetails("name is required")
		}
		patch.Name = &name
	}

	if patch.Age != nil && (*patch.Age < 0 || *patch.Age > maxAge) {
		return patch, domainerrors.ErrValidationFailed.WithDetails("age out of range")
	}

	if patch.AboutText != nil {
		about := strings.TrimSpace(*patch.AboutText)
		if srv.maxAbout > 0 && utf8.RuneCountInString(about) > srv.maxAbout {
			return patch, domainerrors.ErrTextTooLong
		}
		patch.AboutText = &about
	}

	if patch.LocationVisibility != nil {
		visibility, ok := entity.ParseVisibility(string(*patch.LocationVisibility))
		if !ok {
			return patch, domainerrors.ErrValidationFailed.WithDetails("unknown location visibility")
		}
		patch.LocationVisibility = &visibility
	}

	for _, link := range []**string{&patch.LinkedIn, &patch.GitHub, &patch.Portfolio, &patch.Instagram, &patch.Twitter} {
		if *link != nil {
			url := normalizeLinkURL(**link)
			*link = &url
		}
	}

	if patch.SocialLinksOrder != nil {
		if v := entity.ValidateLinksOrder(patch.SocialLinksOrder); v != nil {
			return patch, domainerrors.ErrInvalidLinksOrder.WithDetails(v.Detail)
		}
	}

	if patch.Habilities != nil {
		labels := make([]string, 0, len(*patch.Habilities))
		for _, label := range *patch.Habilities {
			labels = append(labels, strings.TrimSpace(label))
		}
		if v := entity.ValidateHabilities(labels); v != nil {
			return patch, domainerrors.ErrInvalidHabilities.WithDetails(v.Rule)
		}
		patch.Habilities = &labels
	}

	return patch, nil
}

// normalizeLinkURL trims raw and adds https:// when it has no scheme. Empty clears the link.
func normalizeLinkURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return ""
	}

	lower := strings.ToLower(url)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return url
	}

	return "https://" + url
}

// log returns the request-scoped logger when present.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func findProfile(ctx context.Context, repo repository.ProfileRepository, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// publish announces a change. Delivery failures are logged, the write already happened.
func (srv *profileService) publish(ctx context.Context, kind entity.ExternalEventKind, userID uuid.UUID, friendID *uuid.UUID, payload entity.EventPayload) {
	event := &entity.ExternalEvent{
		ID:       uuid.NewString(),
		Kind:     kind,
		UserID:   userID,
		FriendID: friendID,
		Payload:  payload,
	}
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish profile event",
			slog.String("kind", string(kind)),
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)
	}
}
