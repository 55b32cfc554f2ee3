package worker

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"profilesync/config"
	"profilesync/internal/delivery/worker/handler"
	"profilesync/internal/domain/entity"
	"profilesync/internal/infra/pubsub"
	mockUC "profilesync/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWorker_PushRoute(t *testing.T) {
	cfg := &config.Config{Worker: &config.WorkerConfig{Port: 8081}}
	syncUC := mockUC.NewMockProfileSyncUsecase(t)
	e := NewEcho(cfg, testLogger(), handler.NewPushHandler(handler.PushHandlerParams{
		Config: cfg,
		Logger: testLogger(),
		SyncUC: syncUC,
	}))

	event := &entity.ExternalEvent{ID: "evt-9", Kind: entity.EventProfileUpdated, UserID: uuid.New()}
	syncUC.EXPECT().
		HandleExternalEvent(mock.Anything, mock.MatchedBy(func(got entity.ExternalEvent) bool {
			return got.ID == "evt-9" && got.Kind == entity.EventProfileUpdated
		})).
		Return(nil)

	msg, err := pubsub.NewPushMessage(event)
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestWorker_Health(t *testing.T) {
	cfg := &config.Config{Worker: &config.WorkerConfig{Port: 8081}}
	e := NewEcho(cfg, testLogger(), handler.NewPushHandler(handler.PushHandlerParams{
		Config: cfg,
		Logger: testLogger(),
		SyncUC: mockUC.NewMockProfileSyncUsecase(t),
	}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestNewServer_RequiresPort(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	_, err := NewServer(ServerParams{
		Lc:     lc,
		Cfg:    &config.Config{},
		Logger: testLogger(),
	})

	assert.Error(t, err)
}
