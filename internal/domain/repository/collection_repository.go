package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"machone/internal/domain/entity"
)

// ErrCollectionNotFound is returned when a collection is not found.
var ErrCollectionNotFound = errors.New("collection not found")

// ErrCollectionItemNotFound is returned when a collection item is not found.
var ErrCollectionItemNotFound = errors.New("collection item not found")

// CollectionRepository persists user-curated collections and their ordered items.
type CollectionRepository interface {
	// FindByID retrieves a collection with its items ordered by position.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error)

	// ListByUser returns the user's collections ordered by display order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Collection, error)

	// MaxDisplayOrder returns the highest display order among the user's
	// collections, or zero when they have none.
	MaxDisplayOrder(ctx context.Context, userID uuid.UUID) (int, error)

	// Create persists a new collection.
	Create(ctx context.Context, collection *entity.Collection) error

	// Update modifies a collection's name and description.
	Update(ctx context.Context, collection *entity.Collection) error

	// Delete removes a collection and its items.
	Delete(ctx context.Context, id uuid.UUID) error

	// MaxItemPosition returns the highest item position within a collection,
	// or zero when it is empty.
	MaxItemPosition(ctx context.Context, collectionID uuid.UUID) (int, error)

	// AddItem persists a new collection item.
	AddItem(ctx context.Context, item *entity.CollectionItem) error

	// RemoveItem deletes one item from a collection.
	RemoveItem(ctx context.Context, collectionID, itemID uuid.UUID) error
}
