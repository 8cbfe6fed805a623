package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TutorProfile struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Verified        *bool     `gorm:"type:boolean"`
	Headline        string    `gorm:"type:varchar(150)"`
	Bio             *string   `gorm:"type:text"`
	Subjects        string    `gorm:"type:text"`
	City            string    `gorm:"type:varchar(100)"`
	TeachingMode    string    `gorm:"type:varchar(20);default:'online'"`
	HourlyRate      int       `gorm:"default:0"`
	ExperienceYears int       `gorm:"default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
