package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"profilesync/config"
	deliverycontext "profilesync/internal/delivery/context"
	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/infra/pubsub"
	mockUC "profilesync/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func createTestPushHandler(t *testing.T, worker *config.WorkerConfig) (*PushHandler, *mockUC.MockProfileSyncUsecase) {
	syncUC := mockUC.NewMockProfileSyncUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config: &config.Config{Worker: worker},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		SyncUC: syncUC,
	})

	return h, syncUC
}

func pushBody(t *testing.T, event *entity.ExternalEvent) []byte {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event)
	require.NoError(t, err)
	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return raw
}

func servePush(h *PushHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func friendEvent() *entity.ExternalEvent {
	count := 3

	return &entity.ExternalEvent{
		ID:        "evt-1",
		RequestID: "req-42",
		Kind:      entity.EventFriendAccepted,
		UserID:    uuid.New(),
		Payload:   entity.EventPayload{FriendsCount: &count},
	}
}

func TestPushHandler_AppliesEvent(t *testing.T) {
	h, syncUC := createTestPushHandler(t, nil)
	event := friendEvent()

	syncUC.EXPECT().
		HandleExternalEvent(mock.Anything, mock.MatchedBy(func(got entity.ExternalEvent) bool {
			return got.ID == event.ID && got.UserID == event.UserID && *got.Payload.FriendsCount == 3
		})).
		Run(func(ctx context.Context, _ entity.ExternalEvent) {
			assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(nil)

	rec := servePush(h, pushBody(t, event), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_Outcomes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"network failure is redelivered", domainerrors.NewSyncError(domainerrors.KindNetwork, "", errors.New("timeout")), http.StatusServiceUnavailable},
		{"auth failure is acknowledged", domainerrors.NewSyncError(domainerrors.KindAuthExpired, "", nil), http.StatusOK},
		{"unclassified failure is acknowledged", errors.New("boom"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, syncUC := createTestPushHandler(t, nil)
			syncUC.EXPECT().HandleExternalEvent(mock.Anything, mock.Anything).Return(tt.err)

			rec := servePush(h, pushBody(t, friendEvent()), nil)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestPushHandler_BadPayload(t *testing.T) {
	h, _ := createTestPushHandler(t, nil)

	rec := servePush(h, []byte(`{"message":{"data":"%%%"}}`), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := createTestPushHandler(t, nil)
	event := friendEvent()
	msg, err := pubsub.NewPushMessage(event)
	require.NoError(t, err)

	assert.Equal(t, "req-42", h.extractRequestID(context.Background(), msg, event))

	msg.Message.Attributes["request_id"] = "from-attributes"
	assert.Equal(t, "from-attributes", h.extractRequestID(context.Background(), msg, event))

	delete(msg.Message.Attributes, "request_id")
	event.RequestID = ""
	ctx := deliverycontext.WithRequestID(context.Background(), "from-context")
	assert.Equal(t, "from-context", h.extractRequestID(ctx, msg, event))

	generated := h.extractRequestID(context.Background(), msg, event)
	_, err = uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestPushHandler_VerifyPush(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		payload  *idtoken.Payload
		err      error
		status   int
		audience string
	}{
		{name: "missing header", status: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", err: errors.New("bad signature"), status: http.StatusUnauthorized},
		{
			name:    "foreign issuer",
			header:  "Bearer tok",
			payload: &idtoken.Payload{Issuer: "https://evil.example.com"},
			status:  http.StatusUnauthorized,
		},
		{
			name:    "unverified email",
			header:  "Bearer tok",
			payload: &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}},
			status:  http.StatusUnauthorized,
		},
		{
			name:     "valid token",
			header:   "Bearer tok",
			payload:  &idtoken.Payload{Issuer: "https://accounts.google.com"},
			status:   http.StatusOK,
			audience: "https://worker.example.com/push",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, syncUC := createTestPushHandler(t, &config.WorkerConfig{VerifyPush: true, Audience: "https://worker.example.com/push"})
			h.validate = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "https://worker.example.com/push", audience)
				if tt.err != nil {
					return nil, tt.err
				}

				return tt.payload, nil
			}
			if tt.status == http.StatusOK {
				syncUC.EXPECT().HandleExternalEvent(mock.Anything, mock.Anything).Return(nil)
			}

			header := http.Header{}
			if tt.header != "" {
				header.Set("Authorization", tt.header)
			}
			rec := servePush(h, pushBody(t, friendEvent()), header)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
