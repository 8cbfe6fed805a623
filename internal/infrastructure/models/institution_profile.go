package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstitutionProfile struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Verified        *bool     `gorm:"type:boolean"`
	InstitutionName string    `gorm:"type:varchar(255);not null"`
	InstitutionType string    `gorm:"type:varchar(100)"`
	EstablishedYear int
	Website         *string `gorm:"type:varchar(255)"`
	City            string  `gorm:"type:varchar(100)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
