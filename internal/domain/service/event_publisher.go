package service

import (
	"context"

	"profilesync/internal/domain/entity"
)

// EventPublisher pushes server-originated profile events to the realtime channel.
type EventPublisher interface {
	// Publish delivers one event. Delivery is at-least-once.
	Publish(ctx context.Context, event *entity.ExternalEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
