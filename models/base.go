package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel is embedded by every persisted entity. Soft-deleted rows keep
// their data for audit but are excluded from default queries via DeletedAt.
type BaseModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	IsDeleted bool           `gorm:"not null;default:false" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
