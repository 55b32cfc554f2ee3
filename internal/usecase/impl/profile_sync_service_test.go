package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"profilesync/internal/domain/completion"
	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/domain/repository"
	"profilesync/internal/domain/service"
	"profilesync/internal/infra/cache"
	mockSvc "profilesync/internal/mocks/service"
	"profilesync/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// changeLog records every view the engine publishes.
type changeLog struct {
	mu      sync.Mutex
	changes []usecase.ViewChange
	views   []entity.View
}

func (l *changeLog) record(change usecase.ViewChange, view entity.View) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.changes = append(l.changes, change)
	l.views = append(l.views, view)
}

func (l *changeLog) kinds() []usecase.ViewChange {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]usecase.ViewChange, len(l.changes))
	copy(out, l.changes)

	return out
}

// profileSyncFixtures holds all test dependencies for sync service tests.
type profileSyncFixtures struct {
	service usecase.ProfileSyncUsecase
	store   *mockSvc.MockProfileStore
	cache   repository.ProfileCache
	log     *changeLog
}

func createTestProfileSyncService(t *testing.T) profileSyncFixtures {
	store := mockSvc.NewMockProfileStore(t)
	profileCache := cache.NewProfileCache()
	log := &changeLog{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewProfileSyncService(ProfileSyncParams{
		Store:    store,
		Cache:    profileCache,
		Logger:   logger,
		Listener: log.record,
	})

	return profileSyncFixtures{
		service: svc,
		store:   store,
		cache:   profileCache,
		log:     log,
	}
}

func baseProfile() entity.Profile {
	return entity.Profile{
		UserID:           uuid.New(),
		Name:             "Ana",
		Email:            "ana@example.com",
		Age:              27,
		AboutText:        "Backend developer",
		Links:            entity.Links{LinkedIn: "https://linkedin.com/in/ana", GitHub: "https://github.com/ana"},
		SocialLinksOrder: []entity.LinkField{"linkedin", "github", "portfolio", "instagram", "twitter"},
		Habilities:       []string{"Go"},
		FriendsCount:     2,
	}
}

func openSession(t *testing.T, fx profileSyncFixtures, profile entity.Profile) {
	t.Helper()

	loaded := profile.Clone()
	fx.store.EXPECT().FetchProfile(mock.Anything, profile.UserID).Return(&loaded, nil).Once()

	_, err := fx.service.Open(context.Background(), profile.UserID)
	require.NoError(t, err)
}

func TestProfileSyncService_Open_Success(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()

	loaded := profile.Clone()
	fx.store.EXPECT().FetchProfile(mock.Anything, profile.UserID).Return(&loaded, nil)

	view, err := fx.service.Open(context.Background(), profile.UserID)

	require.NoError(t, err)
	assert.Equal(t, profile, view.Profile)
	assert.Equal(t, completion.Estimate(profile), view.Notification)
	assert.Equal(t, []usecase.ViewChange{usecase.ViewLoaded}, fx.log.kinds())
	assert.Equal(t, profile.UserID, fx.cache.Owner())
}

func TestProfileSyncService_UpdateName_Reconciles(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	openSession(t, fx, profile)

	echoed := profile.Clone()
	echoed.Name = "Ana Maria"
	fx.store.EXPECT().WriteScalar(mock.Anything, entity.FieldName, " Ana Maria ").Return(&echoed, nil)

	err := fx.service.UpdateName(context.Background(), " Ana Maria ")

	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", fx.service.View().Profile.Name)
	assert.Equal(t, []usecase.ViewChange{
		usecase.ViewLoaded, usecase.ViewOptimistic, usecase.ViewReconciled,
	}, fx.log.kinds())
}

func TestProfileSyncService_UpdateName_ConfirmedWithoutEcho(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	openSession(t, fx, profile)

	fx.store.EXPECT().WriteScalar(mock.Anything, entity.FieldName, "Bia").Return(nil, nil)

	err := fx.service.UpdateName(context.Background(), "Bia")

	require.NoError(t, err)
	assert.Equal(t, "Bia", fx.service.View().Profile.Name)
	assert.Equal(t, []usecase.ViewChange{usecase.ViewLoaded, usecase.ViewOptimistic}, fx.log.kinds())
}

func TestProfileSyncService_OptimisticStateVisibleBeforeWriteCompletes(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	profile.AboutText = ""
	openSession(t, fx, profile)

	release := make(chan struct{})
	done := fx.service.MutateAsync(context.Background(),
		entity.ProfilePatch{AboutText: entity.Ptr("Platform engineer")},
		func(ctx context.Context) (*entity.Profile, error) {
			<-release

			return nil, nil
		})

	view := fx.service.View()
	assert.Equal(t, "Platform engineer", view.Profile.AboutText)
	assert.NotContains(t, view.Notification.MissingFields, "sobre você")
	assert.Equal(t, completion.Estimate(view.Profile), view.Notification)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, "Platform engineer", fx.service.View().Profile.AboutText)
}

func TestProfileSyncService_UpdateLinks(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	openSession(t, fx, profile)

	input := service.LinksInput{Portfolio: entity.Ptr("ana.dev")}
	echoed := profile.Clone()
	echoed.Links.Portfolio = "https://ana.dev"
	fx.store.EXPECT().WriteLinks(mock.Anything, input).Return(&echoed, nil)

	err := fx.service.UpdateLinks(context.Background(), input)

	require.NoError(t, err)
	view := fx.service.View()
	assert.Equal(t, "https://ana.dev", view.Profile.Links.Portfolio)
	assert.NotContains(t, view.Notification.MissingFields, "portfólio")
}

func TestProfileSyncService_UpdateLocationAndFocus(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	openSession(t, fx, profile)

	visibility := entity.VisibilityStateOnly
	fx.store.EXPECT().WriteLocation(mock.Anything, "Recife", &visibility).Return(nil, nil)

	focus := service.FocusInput{UserFocus: entity.FocusCollege, CollegeCourse: entity.Ptr("Computação")}
	fx.store.EXPECT().WriteFocus(mock.Anything, focus).Return(nil, nil)

	require.NoError(t, fx.service.UpdateLocation(context.Background(), "Recife", &visibility))
	require.NoError(t, fx.service.UpdateFocus(context.Background(), focus))

	got := fx.service.View().Profile
	assert.Equal(t, "Recife", got.Location)
	assert.Equal(t, entity.VisibilityStateOnly, got.LocationVisibility)
	assert.Equal(t, entity.FocusCollege, got.UserFocus)
	assert.Equal(t, "Computação", got.CollegeCourse)
}

func TestProfileSyncService_UpdateLinksOrder_StoresServerOrder(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	openSession(t, fx, profile)

	order := []entity.LinkField{"github", "linkedin", "portfolio", "instagram", "twitter"}
	fx.store.EXPECT().WriteOrder(mock.Anything, order).Return(order, nil)

	err := fx.service.UpdateLinksOrder(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, order, fx.service.View().Profile.SocialLinksOrder)
}

func TestProfileSyncService_MoveLink(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	openSession(t, fx, profile)

	moved := []entity.LinkField{"twitter", "linkedin", "github", "portfolio", "instagram"}
	fx.store.EXPECT().WriteOrder(mock.Anything, moved).Return(moved, nil)

	err := fx.service.MoveLink(context.Background(), 4, 0)

	require.NoError(t, err)
	assert.Equal(t, moved, fx.service.View().Profile.SocialLinksOrder)
}

func TestProfileSyncService_MoveLink_UsesDefaultOrderWhenUnset(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	profile.SocialLinksOrder = nil
	openSession(t, fx, profile)

	moved := []entity.LinkField{"github", "linkedin", "portfolio", "instagram", "twitter"}
	fx.store.EXPECT().WriteOrder(mock.Anything, moved).Return(moved, nil)

	require.NoError(t, fx.service.MoveLink(context.Background(), 1, 0))
	assert.Equal(t, moved, fx.service.View().Profile.SocialLinksOrder)
}

func TestProfileSyncService_UpdateLinksOrder_AdoptsStoredOrder(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	openSession(t, fx, profile)

	order := []entity.LinkField{"github", "linkedin", "portfolio", "instagram", "twitter"}
	stored := []entity.LinkField{"github", "portfolio", "linkedin", "instagram", "twitter"}
	fx.store.EXPECT().WriteOrder(mock.Anything, order).Return(stored, nil)

	require.NoError(t, fx.service.UpdateLinksOrder(context.Background(), order))

	assert.Equal(t, stored, fx.service.View().Profile.SocialLinksOrder)
	assert.Contains(t, fx.log.kinds(), usecase.ViewReconciled)
}

func TestProfileSyncService_UpdateLinksOrder_KeepsConcurrentFriendCount(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	openSession(t, fx, profile)
	ctx := context.Background()

	order := []entity.LinkField{"github", "linkedin", "portfolio", "instagram", "twitter"}
	stored := []entity.LinkField{"github", "portfolio", "linkedin", "instagram", "twitter"}
	fx.store.EXPECT().WriteOrder(mock.Anything, order).
		Run(func(context.Context, []entity.LinkField) {
			require.NoError(t, fx.service.HandleExternalEvent(ctx, entity.ExternalEvent{
				Kind:    entity.EventFriendAccepted,
				UserID:  profile.UserID,
				Payload: entity.EventPayload{FriendsCount: entity.Ptr(7)},
			}))
		}).
		Return(stored, nil)

	require.NoError(t, fx.service.UpdateLinksOrder(ctx, order))

	got := fx.service.View().Profile
	assert.Equal(t, stored, got.SocialLinksOrder)
	assert.Equal(t, 7, got.FriendsCount)
	assert.Contains(t, fx.log.kinds(), usecase.ViewReconciled)
}

func TestProfileSyncService_Habilities(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	openSession(t, fx, profile)
	ctx := context.Background()

	withReact := profile.Clone()
	withReact.Habilities = []string{"Go", "React"}
	fx.store.EXPECT().WriteSet(mock.Anything, entity.FieldHabilities, []string{"Go", "React"}).Return(&withReact, nil).Once()

	require.NoError(t, fx.service.AddHability(ctx, " React "))
	assert.Equal(t, []string{"Go", "React"}, fx.service.View().Profile.Habilities)

	err := fx.service.AddHability(ctx, "react")
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
	assert.Equal(t, []string{"Go", "React"}, fx.service.View().Profile.Habilities)

	withoutGo := profile.Clone()
	withoutGo.Habilities = []string{"React"}
	fx.store.EXPECT().WriteSet(mock.Anything, entity.FieldHabilities, []string{"React"}).Return(&withoutGo, nil).Once()

	require.NoError(t, fx.service.RemoveHability(ctx, "GO"))
	assert.Equal(t, []string{"React"}, fx.service.View().Profile.Habilities)
}

func TestProfileSyncService_SetHabilities_EmptyClearsField(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	openSession(t, fx, profile)

	cleared := profile.Clone()
	cleared.Habilities = nil
	fx.store.EXPECT().WriteSet(mock.Anything, entity.FieldHabilities, []string(nil)).Return(&cleared, nil)

	err := fx.service.SetHabilities(context.Background(), []string{})

	require.NoError(t, err)
	view := fx.service.View()
	assert.Empty(t, view.Profile.Habilities)
	assert.Contains(t, view.Notification.MissingFields, "habilidades")
}

func TestProfileSyncService_StaleSuccessDoesNotOverwriteNewerEdit(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	openSession(t, fx, profile)
	ctx := context.Background()

	release := make(chan struct{})
	first := fx.service.MutateAsync(ctx, entity.ProfilePatch{Name: entity.Ptr("A")},
		func(ctx context.Context) (*entity.Profile, error) {
			<-release
			p := profile.Clone()
			p.Name = "A"

			return &p, nil
		})

	err := fx.service.Mutate(ctx, entity.ProfilePatch{Name: entity.Ptr("B")},
		func(ctx context.Context) (*entity.Profile, error) {
			p := profile.Clone()
			p.Name = "B"

			return &p, nil
		})
	require.NoError(t, err)

	close(release)
	require.NoError(t, <-first)

	assert.Equal(t, "B", fx.service.View().Profile.Name)
}

func TestProfileSyncService_ConcurrentFieldsSettleIndependently(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	openSession(t, fx, profile)
	ctx := context.Background()

	release := make(chan struct{})
	nameDone := fx.service.MutateAsync(ctx, entity.ProfilePatch{Name: entity.Ptr("X")},
		func(ctx context.Context) (*entity.Profile, error) {
			<-release

			return nil, domainerrors.NewSyncError(domainerrors.KindRemoteRejected, "name rejected", nil)
		})

	err := fx.service.Mutate(ctx, entity.ProfilePatch{AboutText: entity.Ptr("hello")},
		func(ctx context.Context) (*entity.Profile, error) {
			p := profile.Clone()
			p.AboutText = "hello"

			return &p, nil
		})
	require.NoError(t, err)

	// the server echo predates the name edit; the pending local value wins
	assert.Equal(t, "X", fx.service.View().Profile.Name)

	close(release)
	require.Error(t, <-nameDone)

	got := fx.service.View().Profile
	assert.Equal(t, profile.Name, got.Name)
	assert.Equal(t, "hello", got.AboutText)
}

func TestProfileSyncService_HandleExternalEvent_FriendCountFromPayload(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	openSession(t, fx, profile)

	err := fx.service.HandleExternalEvent(context.Background(), entity.ExternalEvent{
		ID:      "evt-1",
		Kind:    entity.EventFriendAccepted,
		UserID:  profile.UserID,
		Payload: entity.EventPayload{FriendsCount: entity.Ptr(3)},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, fx.service.View().Profile.FriendsCount)
	assert.Contains(t, fx.log.kinds(), usecase.ViewRefreshed)
}

func TestProfileSyncService_HandleExternalEvent_RefetchesWithoutPayload(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	openSession(t, fx, profile)

	fresh := profile.Clone()
	fresh.FriendsCount = 1
	fx.store.EXPECT().FetchProfile(mock.Anything, profile.UserID).Return(&fresh, nil).Once()

	err := fx.service.HandleExternalEvent(context.Background(), entity.ExternalEvent{
		Kind:   entity.EventFriendRemoved,
		UserID: profile.UserID,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, fx.service.View().Profile.FriendsCount)
}

func TestProfileSyncService_HandleExternalEvent_RefreshKeepsInFlightFields(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	openSession(t, fx, profile)
	ctx := context.Background()

	release := make(chan struct{})
	done := fx.service.MutateAsync(ctx, entity.ProfilePatch{Name: entity.Ptr("Local")},
		func(ctx context.Context) (*entity.Profile, error) {
			<-release

			return nil, nil
		})

	fresh := profile.Clone()
	fresh.Name = "Server"
	fresh.Location = "Natal"
	fx.store.EXPECT().FetchProfile(mock.Anything, profile.UserID).Return(&fresh, nil).Once()

	require.NoError(t, fx.service.HandleExternalEvent(ctx, entity.ExternalEvent{
		Kind:   entity.EventProfileUpdated,
		UserID: profile.UserID,
	}))

	got := fx.service.View().Profile
	assert.Equal(t, "Local", got.Name)
	assert.Equal(t, "Natal", got.Location)

	close(release)
	require.NoError(t, <-done)
}

func TestProfileSyncService_HandleExternalEvent_RefreshAdoptsSettledFields(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	openSession(t, fx, profile)
	ctx := context.Background()

	fx.store.EXPECT().WriteScalar(mock.Anything, entity.FieldName, "Bia").Return(nil, nil)
	require.NoError(t, fx.service.UpdateName(ctx, "Bia"))

	fresh := profile.Clone()
	fresh.Name = "Server"
	fx.store.EXPECT().FetchProfile(mock.Anything, profile.UserID).Return(&fresh, nil).Once()

	require.NoError(t, fx.service.HandleExternalEvent(ctx, entity.ExternalEvent{
		Kind:   entity.EventProfileUpdated,
		UserID: profile.UserID,
	}))

	assert.Equal(t, "Server", fx.service.View().Profile.Name)
}

func TestProfileSyncService_HandleExternalEvent_Ignored(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	openSession(t, fx, profile)
	before := fx.service.View()

	tests := []struct {
		name  string
		event entity.ExternalEvent
	}{
		{
			name:  "another user",
			event: entity.ExternalEvent{Kind: entity.EventProfileUpdated, UserID: uuid.New()},
		},
		{
			name:  "unknown kind",
			event: entity.ExternalEvent{Kind: "badge.granted", UserID: profile.UserID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, fx.service.HandleExternalEvent(context.Background(), tt.event))
			assert.Equal(t, before, fx.service.View())
		})
	}
}

func TestProfileSyncService_SubscriptionStatus(t *testing.T) {
	fx := createTestProfileSyncService(t)

	fx.store.EXPECT().SubscriptionStatus(mock.Anything).
		Return(&entity.SubscriptionStatus{Active: true, Plan: "pro"}, nil).Once()

	status, err := fx.service.SubscriptionStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatus{Active: true, Plan: "pro"}, status)
}

func TestProfileSyncService_SubscriptionStatus_NotFoundIsInactive(t *testing.T) {
	fx := createTestProfileSyncService(t)

	fx.store.EXPECT().SubscriptionStatus(mock.Anything).
		Return(nil, domainerrors.NewSyncError(domainerrors.KindNotFound, "subscription not found", nil)).Once()

	status, err := fx.service.SubscriptionStatus(context.Background())

	require.NoError(t, err)
	assert.False(t, status.Active)
	assert.Empty(t, status.Plan)
}

func TestProfileSyncService_CloseDropsLateResponses(t *testing.T) {
	fx := createTestProfileSyncService(t)
	profile := baseProfile()
	openSession(t, fx, profile)

	release := make(chan struct{})
	done := fx.service.MutateAsync(context.Background(), entity.ProfilePatch{Name: entity.Ptr("Late")},
		func(ctx context.Context) (*entity.Profile, error) {
			<-release
			p := profile.Clone()
			p.Name = "Late"

			return &p, nil
		})

	fx.service.Close()
	close(release)
	require.NoError(t, <-done)

	_, loaded := fx.cache.Get()
	assert.False(t, loaded)
	assert.Equal(t, entity.Profile{}, fx.service.View().Profile)
}
