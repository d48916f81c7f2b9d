package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
// The password hash lives only here; it never reaches the domain entity.
type UserModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email          string         `gorm:"type:varchar(255);unique;not null"`
	Nickname       string         `gorm:"type:varchar(50);unique;not null"`
	PasswordHash   string         `gorm:"type:varchar(255);not null"`
	Name           string         `gorm:"type:varchar(100)"`
	Bio            string         `gorm:"type:text"`
	AvatarURL      string         `gorm:"type:varchar(512)"`
	Phone          string         `gorm:"type:varchar(30)"`
	SocialNetworks map[string]any `gorm:"type:jsonb;serializer:json"`
	Role           string         `gorm:"type:varchar(20);not null;default:'user'"`
	IsActive       bool           `gorm:"not null;default:true"`
	VisitCount     int            `gorm:"not null;default:0"`
	LastSeen       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
