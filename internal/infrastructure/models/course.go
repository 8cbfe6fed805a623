package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TutorID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:varchar(150);not null"`
	Subject       string    `gorm:"type:varchar(100);not null"`
	Description   string    `gorm:"type:text"`
	Level         string    `gorm:"type:varchar(50)"`
	Price         int       `gorm:"default:0"`
	DurationWeeks int       `gorm:"default:0"`
	IsActive      bool      `gorm:"default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

type Enrollment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CourseID   uuid.UUID `gorm:"type:uuid;not null;index"`
	StudentID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(20);not null;default:'active'"`
	EnrolledAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}
