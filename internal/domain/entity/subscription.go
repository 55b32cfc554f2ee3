package entity

import "time"

// SubscriptionStatus is the user's plan state. A user without a subscription has
// Active=false and a zero Plan; that is a normal state, not an error.
type SubscriptionStatus struct {
	Active    bool       `json:"active"`
	Plan      string     `json:"plan,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
