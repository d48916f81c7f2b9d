package service

import (
	"time"

	"github.com/google/uuid"

	"machone/internal/domain/entity"
)

// Claims is the decoded content of a verified session token.
type Claims struct {
	UserID    uuid.UUID   // Subject: who authenticated.
	Role      entity.Role // Privilege tier at issue time.
	TokenID   string      // Unique token identifier (jti), reserved for a future denylist.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, self-contained session tokens.
// Verification is stateless: a token becomes invalid only by expiry or
// signature mismatch, never by server-side revocation.
type TokenService interface {
	// Issue builds and signs a token for the given user. The token carries
	// subject, role, issued-at, a one-hour expiry and a fresh token ID.
	Issue(userID uuid.UUID, role entity.Role) (string, error)

	// Verify checks structure, signature and expiry. It returns
	// domainerrors.ErrTokenMalformed, ErrTokenSignatureInvalid or
	// ErrTokenExpired respectively; all map to the same generic 401.
	Verify(token string) (*Claims, error)
}
