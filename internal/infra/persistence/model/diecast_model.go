package model

import (
	"time"

	"github.com/google/uuid"
)

// DiecastModel mirrors the 'diecasts' table. The model_name column carries a
// pg_trgm GIN index to back fuzzy search.
type DiecastModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ModelName             string    `gorm:"type:varchar(255);not null"`
	ImageURL              string    `gorm:"type:varchar(512)"`
	CollectorNumber       string    `gorm:"type:varchar(20)"`
	SeriesNumber          string    `gorm:"type:varchar(20)"`
	ReleaseYear           int       `gorm:"index"`
	Series                string    `gorm:"type:varchar(120);index"`
	Color                 string    `gorm:"type:varchar(80)"`
	Tampo                 string    `gorm:"type:text"`
	WheelType             string    `gorm:"type:varchar(80)"`
	BaseType              string    `gorm:"type:varchar(80)"`
	BaseColor             string    `gorm:"type:varchar(80)"`
	WindowColor           string    `gorm:"type:varchar(80)"`
	InteriorColor         string    `gorm:"type:varchar(80)"`
	ToyNumber             string    `gorm:"type:varchar(30)"`
	AssortmentNumber      string    `gorm:"type:varchar(30)"`
	Scale                 string    `gorm:"type:varchar(20)"`
	Country               string    `gorm:"type:varchar(80)"`
	BaseCodes             string    `gorm:"type:varchar(80)"`
	CaseNumber            string    `gorm:"type:varchar(30)"`
	Notes                 string    `gorm:"type:text"`
	TreasureHuntYear      int
	SuperTreasureHuntYear int
	VisitCount            int `gorm:"not null;default:0"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (DiecastModel) TableName() string {
	return "diecasts"
}
