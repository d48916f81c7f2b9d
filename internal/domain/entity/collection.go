package entity

import (
	"time"

	"github.com/google/uuid"
)

// Collection is a user-curated, ordered showcase of catalog diecasts.
// DisplayOrder is unique per owner so collections render in a stable order.
type Collection struct {
	ID           uuid.UUID         `json:"id"`
	UserID       uuid.UUID         `json:"user_id"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	DisplayOrder int               `json:"display_order"`
	Items        []*CollectionItem `json:"items"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// CollectionItem places one diecast at a position within a collection.
type CollectionItem struct {
	ID           uuid.UUID `json:"id"`
	CollectionID uuid.UUID `json:"collection_id"`
	DiecastID    uuid.UUID `json:"diecast_id"`
	Position     int       `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
