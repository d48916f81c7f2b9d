package model

import (
	"time"

	"github.com/google/uuid"
)

// CollectionModel mirrors the 'collections' table. A partial unique index on
// (user_id, display_order) keeps each user's ordering free of duplicates.
type CollectionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_collections_user_display_order,priority:1"`
	Name         string    `gorm:"type:varchar(120);not null"`
	Description  string    `gorm:"type:text"`
	DisplayOrder int       `gorm:"not null;uniqueIndex:uq_collections_user_display_order,priority:2"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []*CollectionItemModel `gorm:"foreignKey:CollectionID"`
}

// TableName explicitly sets the table name for GORM.
func (CollectionModel) TableName() string {
	return "collections"
}

// CollectionItemModel mirrors the 'collection_items' table.
type CollectionItemModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CollectionID uuid.UUID `gorm:"type:uuid;not null;index"`
	DiecastID    uuid.UUID `gorm:"type:uuid;not null"`
	Position     int       `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CollectionItemModel) TableName() string {
	return "collection_items"
}
