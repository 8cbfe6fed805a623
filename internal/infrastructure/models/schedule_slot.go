package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleSlot struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TutorID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	CourseID  *uuid.UUID `gorm:"type:uuid"`
	StudentID *uuid.UUID `gorm:"type:uuid;index"`
	StartsAt  time.Time  `gorm:"not null"`
	EndsAt    time.Time  `gorm:"not null"`
	Status    string     `gorm:"type:varchar(20);not null;default:'available'"`
	Notes     string     `gorm:"type:varchar(500)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
