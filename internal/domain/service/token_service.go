package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService issues and validates the bearer tokens of the profile API.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for userID.
	GenerateAccessToken(userID uuid.UUID) (string, time.Time, error)

	// ValidateAccessToken verifies a token and returns the user it was issued to.
	ValidateAccessToken(token string) (uuid.UUID, error)
}
