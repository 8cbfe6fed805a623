package entities

import (
	"time"

	"github.com/google/uuid"
)

// SlotStatus represents the state of a schedule slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotCancelled SlotStatus = "cancelled"
)

// ScheduleSlot is a bookable time slot on a tutor's calendar.
type ScheduleSlot struct {
	ID        uuid.UUID     `json:"id"`
	TutorID   uuid.UUID     `json:"tutorId"`
	CourseID  uuid.NullUUID `json:"courseId"`
	StudentID uuid.NullUUID `json:"studentId"`
	StartsAt  time.Time     `json:"startsAt"`
	EndsAt    time.Time     `json:"endsAt"`
	Status    SlotStatus    `json:"status"`
	Notes     string        `json:"notes"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// CreateSlotInput represents input for publishing a schedule slot
type CreateSlotInput struct {
	CourseID string    `json:"courseId" binding:"omitempty,uuid"`
	StartsAt time.Time `json:"startsAt" binding:"required"`
	EndsAt   time.Time `json:"endsAt" binding:"required,gtfield=StartsAt"`
	Notes    string    `json:"notes" binding:"omitempty,max=500"`
}
