package usecase

import (
	"context"

	"github.com/google/uuid"

	"machone/internal/domain/entity"
)

// WishlistUsecase defines want-list operations. All operations act on the
// authenticated caller's own wishlist.
type WishlistUsecase interface {
	// Add puts a catalog diecast on the caller's wishlist.
	Add(ctx context.Context, userID, diecastID uuid.UUID) error

	// Remove takes a diecast off the caller's wishlist.
	Remove(ctx context.Context, userID, diecastID uuid.UUID) error

	// Contains reports whether the diecast is on the caller's wishlist.
	Contains(ctx context.Context, userID, diecastID uuid.UUID) (bool, error)

	// List returns the catalog projections of the caller's wishlist.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.DiecastSummary, error)
}
