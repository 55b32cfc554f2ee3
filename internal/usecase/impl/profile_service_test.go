package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"profilesync/config"
	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/domain/repository"
	mockRepo "profilesync/internal/mocks/repository"
	mockSvc "profilesync/internal/mocks/service"
	"profilesync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
	tokens      *mockSvc.MockTokenService
	publisher   *mockSvc.MockEventPublisher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	tokens := mockSvc.NewMockTokenService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		Tokens:    tokens,
		Publisher: publisher,
		Config:    &config.Config{Profile: &config.ProfileConfig{MaxAboutLength: 20}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return profileServiceFixtures{
		service:     service,
		txManager:   txManager,
		profileRepo: profileRepo,
		tokens:      tokens,
		publisher:   publisher,
	}
}

// inTx runs the transaction body against the fixture repository.
func (fx profileServiceFixtures) inTx(t *testing.T) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ProfileRepo().Return(fx.profileRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func storedProfile(userID uuid.UUID) *entity.Profile {
	return &entity.Profile{
		UserID:             userID,
		Name:               "Ana",
		Email:              "ana@example.com",
		LocationVisibility: entity.VisibilityPublic,
		Habilities:         []string{"Go"},
	}
}

func TestProfileService_Register_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)
	fx.inTx(t)

	fx.profileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			assert.Equal(t, "Ana Souza", profile.Name)
			assert.Equal(t, "ana@example.com", profile.Email)
			profile.UserID = userID
		}).
		Return(nil)
	fx.tokens.EXPECT().GenerateAccessToken(userID).Return("signed", expiresAt, nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "  Ana Souza ", Email: "Ana@Example.com"})

	require.NoError(t, err)
	assert.Equal(t, "signed", out.AccessToken)
	assert.Equal(t, expiresAt, out.ExpiresAt)
	assert.Equal(t, userID, out.Profile.UserID)
}

func TestProfileService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	fx.inTx(t)

	fx.profileRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrProfileAlreadyExists)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "Ana", Email: "ana@example.com"})

	assert.True(t, errors.Is(err, domainerrors.ErrProfileAlreadyExists))
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	fx.inTx(t)

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetProfile(ctx, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_UpdateProfile_NormalizesAndPublishes(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	fx.inTx(t)

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(storedProfile(userID), nil)
	fx.profileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			assert.Equal(t, "Bia", profile.Name)
			assert.Equal(t, "https://github.com/bia", profile.Links.GitHub)
			assert.Equal(t, "http://bia.dev", profile.Links.Portfolio)
			assert.Equal(t, []string{"Go", "React"}, profile.Habilities)
			assert.Equal(t, entity.VisibilityStateOnly, profile.LocationVisibility)
			assert.Zero(t, profile.FriendsCount)
		}).
		Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.MatchedBy(func(event *entity.ExternalEvent) bool {
		return event.Kind == entity.EventProfileUpdated && event.UserID == userID
	})).Return(nil)

	visibility := entity.Visibility("state_only")
	profile, err := fx.service.UpdateProfile(ctx, userID, &entity.ProfilePatch{
		Name:               entity.Ptr("  Bia "),
		GitHub:             entity.Ptr("github.com/bia"),
		Portfolio:          entity.Ptr("http://bia.dev"),
		Habilities:         &[]string{"Go", " React "},
		LocationVisibility: &visibility,
		FriendsCount:       entity.Ptr(99),
	})

	require.NoError(t, err)
	assert.Equal(t, "Bia", profile.Name)
}

func TestProfileService_UpdateProfile_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	fx.inTx(t)

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(storedProfile(userID), nil)
	fx.profileRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.UpdateProfile(ctx, userID, &entity.ProfilePatch{Age: entity.Ptr(30)})

	assert.NoError(t, err)
}

func TestProfileService_UpdateProfile_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		patch entity.ProfilePatch
		want  error
	}{
		{name: "blank name", patch: entity.ProfilePatch{Name: entity.Ptr("  ")}, want: domainerrors.ErrValidationFailed},
		{name: "negative age", patch: entity.ProfilePatch{Age: entity.Ptr(-1)}, want: domainerrors.ErrValidationFailed},
		{name: "about too long", patch: entity.ProfilePatch{AboutText: entity.Ptr("this text is far too long")}, want: domainerrors.ErrTextTooLong},
		{name: "bad visibility", patch: entity.ProfilePatch{LocationVisibility: entity.Ptr(entity.Visibility("friends"))}, want: domainerrors.ErrValidationFailed},
		{name: "duplicate skill", patch: entity.ProfilePatch{Habilities: &[]string{"Go", "go"}}, want: domainerrors.ErrInvalidHabilities},
		{name: "bad order", patch: entity.ProfilePatch{SocialLinksOrder: []entity.LinkField{"github"}}, want: domainerrors.ErrInvalidLinksOrder},
		{name: "only server fields", patch: entity.ProfilePatch{FriendsCount: entity.Ptr(3)}, want: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			_, err := fx.service.UpdateProfile(context.Background(), uuid.New(), &tt.patch)

			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestProfileService_UpdateLinksOrder_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	order := []entity.LinkField{"twitter", "linkedin", "github", "portfolio", "instagram"}
	fx.inTx(t)

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(storedProfile(userID), nil)
	fx.profileRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

	stored, err := fx.service.UpdateLinksOrder(ctx, userID, order)

	require.NoError(t, err)
	assert.Equal(t, order, stored)
}

func TestProfileService_UpdateLinksOrder_Invalid(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.UpdateLinksOrder(context.Background(), uuid.New(),
		[]entity.LinkField{"github", "github", "portfolio", "instagram", "twitter"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidLinksOrder))
}

func TestProfileService_AddFriend_PublishesCountsForBoth(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID, friendID := uuid.New(), uuid.New()
	fx.inTx(t)

	user := storedProfile(userID)
	user.FriendsCount = 3
	friend := storedProfile(friendID)
	friend.FriendsCount = 8

	fx.profileRepo.EXPECT().FindByUserID(ctx, friendID).Return(friend, nil)
	fx.profileRepo.EXPECT().AddFriend(ctx, userID, friendID).Return(nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(user, nil)

	var events []*entity.ExternalEvent
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).
		Run(func(ctx context.Context, event *entity.ExternalEvent) {
			events = append(events, event)
		}).
		Return(nil).Times(2)

	profile, err := fx.service.AddFriend(ctx, userID, friendID)

	require.NoError(t, err)
	assert.Equal(t, 3, profile.FriendsCount)
	require.Len(t, events, 2)
	assert.Equal(t, entity.EventFriendAccepted, events[0].Kind)
	assert.Equal(t, userID, events[0].UserID)
	assert.Equal(t, 3, *events[0].Payload.FriendsCount)
	assert.Equal(t, friendID, events[1].UserID)
	assert.Equal(t, 8, *events[1].Payload.FriendsCount)
}

func TestProfileService_AddFriend_Self(t *testing.T) {
	fx := createTestProfileService(t)
	userID := uuid.New()

	_, err := fx.service.AddFriend(context.Background(), userID, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_AddFriend_UnknownFriend(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	friendID := uuid.New()
	fx.inTx(t)

	fx.profileRepo.EXPECT().FindByUserID(ctx, friendID).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.AddFriend(ctx, uuid.New(), friendID)

	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_RemoveFriend_NotFriends(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID, friendID := uuid.New(), uuid.New()
	fx.inTx(t)

	fx.profileRepo.EXPECT().FindByUserID(ctx, friendID).Return(storedProfile(friendID), nil)
	fx.profileRepo.EXPECT().RemoveFriend(ctx, userID, friendID).Return(repository.ErrFriendNotFound)

	_, err := fx.service.RemoveFriend(ctx, userID, friendID)

	assert.True(t, errors.Is(err, domainerrors.ErrFriendNotFound))
}

func TestProfileService_SubscriptionStatus(t *testing.T) {
	t.Run("active", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()
		userID := uuid.New()
		fx.inTx(t)

		fx.profileRepo.EXPECT().FindSubscription(ctx, userID).
			Return(&entity.SubscriptionStatus{Active: true, Plan: "pro"}, nil)

		status, err := fx.service.SubscriptionStatus(ctx, userID)

		require.NoError(t, err)
		assert.True(t, status.Active)
	})

	t.Run("never subscribed", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()
		userID := uuid.New()
		fx.inTx(t)

		fx.profileRepo.EXPECT().FindSubscription(ctx, userID).Return(nil, repository.ErrSubscriptionNotFound)

		_, err := fx.service.SubscriptionStatus(ctx, userID)

		assert.True(t, errors.Is(err, domainerrors.ErrSubscriptionNotFound))
	})
}

func TestNormalizeLinkURL(t *testing.T) {
	tests := map[string]string{
		"":                      "",
		"  ":                    "",
		"github.com/ana":        "https://github.com/ana",
		"https://github.com/a":  "https://github.com/a",
		"HTTP://Example.com":    "HTTP://Example.com",
		" linkedin.com/in/ana ": "https://linkedin.com/in/ana",
	}

	for raw, want := range tests {
		assert.Equal(t, want, normalizeLinkURL(raw), raw)
	}
}
