package entity

import "github.com/google/uuid"

// ExternalEventKind enumerates server-originated events that can change a profile view.
type ExternalEventKind string

const (
	EventFriendAccepted ExternalEventKind = "friend.accepted"
	EventFriendRemoved  ExternalEventKind = "friend.removed"
	EventProfileUpdated ExternalEventKind = "profile.updated"
)

// ExternalEvent is delivered by the realtime channel. Payload members are optional;
// when they carry the new value the client patches instead of refetching.
type ExternalEvent struct {
	ID        string            `json:"id"`
	RequestID string            `json:"request_id,omitempty"`
	Kind      ExternalEventKind `json:"kind"`
	UserID    uuid.UUID         `json:"user_id"`
	FriendID  *uuid.UUID        `json:"friend_id,omitempty"`
	Payload   EventPayload      `json:"payload"`
}

// EventPayload carries values an event already knows about.
type EventPayload struct {
	FriendsCount *int `json:"friends_count,omitempty"`
}
