package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Requirement struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	StudentID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Subject       string    `gorm:"type:varchar(100);not null"`
	Description   string    `gorm:"type:text"`
	City          string    `gorm:"type:varchar(100)"`
	PreferredMode string    `gorm:"type:varchar(20);default:'any'"`
	Budget        int       `gorm:"default:0"`
	Status        string    `gorm:"type:varchar(20);not null;default:'open'"`
	ExpiresAt     time.Time `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
