package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"profilesync/internal/delivery/api/validator"
	deliverycontext "profilesync/internal/delivery/context"
	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	mockUC "profilesync/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixtures struct {
	echo      *echo.Echo
	profileUC *mockUC.MockProfileUsecase
	userID    uuid.UUID
}

func createTestProfileHandler(t *testing.T) handlerFixtures {
	profileUC := mockUC.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{
		ProfileUC: profileUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	userID := uuid.New()

	e := echo.New()
	e.Validator = validator.New()
	authed := e.Group("", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetUserID(c, userID)

			return next(c)
		}
	})
	authed.PATCH("/profile/name", h.UpdateFields(NameFields...))
	authed.PATCH("/profile/habilities", h.UpdateFields(HabilityFields...))
	authed.PUT("/user-profile/social-links-order", h.UpdateLinksOrder)
	authed.POST("/friends/:id", h.AddFriend)
	authed.GET("/subscription/status", h.SubscriptionStatus)
	e.GET("/profile", h.GetProfile)

	return handlerFixtures{echo: e, profileUC: profileUC, userID: userID}
}

func (fx handlerFixtures) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *domainerrors.ErrorInfo {
	t.Helper()

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestProfileHandler_UpdateName(t *testing.T) {
	fx := createTestProfileHandler(t)

	fx.profileUC.EXPECT().
		UpdateProfile(mock.Anything, fx.userID, mock.MatchedBy(func(p *entity.ProfilePatch) bool {
			return p.Name != nil && *p.Name == "Bia" && len(p.Fields()) == 1
		})).
		Return(&entity.Profile{UserID: fx.userID, Name: "Bia"}, nil)

	rec := fx.do(http.MethodPatch, "/profile/name", `{"name":"Bia"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Bia"`)
}

func TestProfileHandler_UpdateName_RejectsOtherFields(t *testing.T) {
	fx := createTestProfileHandler(t)

	rec := fx.do(http.MethodPatch, "/profile/name", `{"name":"Bia","age":30}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNEXPECTED_FIELD", decodeError(t, rec).Code)
}

func TestProfileHandler_Habilities_NullClears(t *testing.T) {
	fx := createTestProfileHandler(t)

	fx.profileUC.EXPECT().
		UpdateProfile(mock.Anything, fx.userID, mock.MatchedBy(func(p *entity.ProfilePatch) bool {
			return p.Habilities != nil && len(*p.Habilities) == 0
		})).
		Return(&entity.Profile{UserID: fx.userID}, nil)

	rec := fx.do(http.MethodPatch, "/profile/habilities", `{"habilities":null}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_UpdateProfile_AppError(t *testing.T) {
	fx := createTestProfileHandler(t)

	fx.profileUC.EXPECT().UpdateProfile(mock.Anything, fx.userID, mock.Anything).
		Return(nil, domainerrors.ErrInvalidHabilities.WithDetails("habilities_capacity"))

	rec := fx.do(http.MethodPatch, "/profile/habilities", `{"habilities":["a"]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "INVALID_HABILITIES", info.Code)
	assert.Equal(t, "habilities_capacity", info.Details)
}

func TestProfileHandler_UpdateLinksOrder(t *testing.T) {
	fx := createTestProfileHandler(t)
	order := []entity.LinkField{"twitter", "linkedin", "github", "portfolio", "instagram"}

	fx.profileUC.EXPECT().UpdateLinksOrder(mock.Anything, fx.userID, order).Return(order, nil)

	rec := fx.do(http.MethodPut, "/user-profile/social-links-order",
		`{"socialLinksOrder":["twitter","linkedin","github","portfolio","instagram"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Message string             `json:"message"`
		Data    LinksOrderResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "social links order updated", body.Message)
	assert.Equal(t, entity.LinksOrderStrings(order), body.Data.SocialLinksOrder)
}

func TestProfileHandler_AddFriend_BadID(t *testing.T) {
	fx := createTestProfileHandler(t)

	rec := fx.do(http.MethodPost, "/friends/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_FRIEND_ID", decodeError(t, rec).Code)
}

func TestProfileHandler_AddFriend(t *testing.T) {
	fx := createTestProfileHandler(t)
	friendID := uuid.New()

	fx.profileUC.EXPECT().AddFriend(mock.Anything, fx.userID, friendID).
		RunAndReturn(func(ctx context.Context, userID, friendID uuid.UUID) (*entity.Profile, error) {
			return &entity.Profile{UserID: userID, FriendsCount: 1}, nil
		})

	rec := fx.do(http.MethodPost, "/friends/"+friendID.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"friendsCount":1`)
}

func TestProfileHandler_SubscriptionNotFound(t *testing.T) {
	fx := createTestProfileHandler(t)

	fx.profileUC.EXPECT().SubscriptionStatus(mock.Anything, fx.userID).Return(nil, domainerrors.ErrSubscriptionNotFound)

	rec := fx.do(http.MethodGet, "/subscription/status", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SUBSCRIPTION_NOT_FOUND", decodeError(t, rec).Code)
}

func TestProfileHandler_GetProfile_Unauthenticated(t *testing.T) {
	fx := createTestProfileHandler(t)

	rec := fx.do(http.MethodGet, "/profile", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
