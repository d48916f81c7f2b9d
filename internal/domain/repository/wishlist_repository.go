package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"machone/internal/domain/entity"
)

// ErrWishlistItemNotFound is returned when a wishlist entry is not found.
var ErrWishlistItemNotFound = errors.New("wishlist item not found")

// WishlistRepository persists per-user want lists.
type WishlistRepository interface {
	// Create persists a new wishlist entry.
	Create(ctx context.Context, item *entity.WishlistItem) error

	// Delete removes a wishlist entry; ErrWishlistItemNotFound if absent.
	Delete(ctx context.Context, userID, diecastID uuid.UUID) error

	// Exists reports whether the user has wishlisted the diecast.
	Exists(ctx context.Context, userID, diecastID uuid.UUID) (bool, error)

	// ListByUser returns the catalog projections of everything on the
	// user's wishlist.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DiecastSummary, error)
}
