package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem marks a diecast a user wants but does not own.
// The (UserID, DiecastID) pair is unique.
type WishlistItem struct {
	UserID    uuid.UUID `json:"user_id"`
	DiecastID uuid.UUID `json:"diecast_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
