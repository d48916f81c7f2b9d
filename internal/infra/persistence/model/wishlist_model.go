package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItemModel mirrors the 'wishlist_items' table.
type WishlistItemModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	DiecastID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Diecast *DiecastModel `gorm:"foreignKey:DiecastID"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}
