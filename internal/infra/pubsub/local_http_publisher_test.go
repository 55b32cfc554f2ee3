package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"profilesync/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	event := &entity.ExternalEvent{
		ID:        "evt-1",
		RequestID: "req-1",
		Kind:      entity.EventFriendAccepted,
		UserID:    uuid.New(),
		Payload:   entity.EventPayload{FriendsCount: entity.Ptr(4)},
	}

	var received *entity.ExternalEvent
	var attrs map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))

		var msg PushMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		attrs = msg.Message.Attributes

		var err error
		received, err = msg.Event()
		require.NoError(t, err)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, publisher.Publish(context.Background(), event))
	assert.Equal(t, event, received)
	assert.Equal(t, "friend.accepted", attrs["kind"])
	assert.Equal(t, "req-1", attrs["request_id"])
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.Publish(context.Background(), &entity.ExternalEvent{ID: "x", Kind: entity.EventProfileUpdated})

	assert.Error(t, err)
}

func TestPushMessage_BadData(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Data = "%%%"

	_, err := msg.Event()

	assert.Error(t, err)
}
