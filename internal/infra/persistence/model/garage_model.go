package model

import (
	"time"

	"github.com/google/uuid"
)

// GarageItemModel mirrors the 'garage_items' table. The composite primary key
// enforces one ownership row per user and diecast.
type GarageItemModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	DiecastID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Modality     string    `gorm:"type:varchar(20);not null;default:'collection'"`
	Favorite     bool      `gorm:"not null;default:false"`
	Price        float64
	Description  string `gorm:"type:text"`
	Sold         bool   `gorm:"not null;default:false"`
	Quantity     int    `gorm:"not null;default:1"`
	IsNegotiable bool   `gorm:"not null;default:false"`
	VisitCount   int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Diecast *DiecastModel `gorm:"foreignKey:DiecastID"`
}

// TableName explicitly sets the table name for GORM.
func (GarageItemModel) TableName() string {
	return "garage_items"
}
