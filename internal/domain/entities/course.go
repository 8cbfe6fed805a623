package entities

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentStatus represents the state of a student's course enrollment
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
)

// Course represents a course offered by a tutor
type Course struct {
	ID            uuid.UUID `json:"id"`
	TutorID       uuid.UUID `json:"tutorId"`
	Title         string    `json:"title"`
	Subject       string    `json:"subject"`
	Description   string    `json:"description"`
	Level         string    `json:"level"`
	Price         int       `json:"price"`
	DurationWeeks int       `json:"durationWeeks"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Enrollment links a student to a course
type Enrollment struct {
	ID         uuid.UUID        `json:"id"`
	CourseID   uuid.UUID        `json:"courseId"`
	StudentID  uuid.UUID        `json:"studentId"`
	Status     EnrollmentStatus `json:"status"`
	EnrolledAt time.Time        `json:"enrolledAt"`
}

// EnrolledStudent is an enrollment joined with the student's user record,
// as shown on the tutor's students dashboard.
type EnrolledStudent struct {
	Enrollment *Enrollment `json:"enrollment"`
	Student    *User       `json:"student"`
	Course     *Course     `json:"course"`
}

// CreateCourseInput represents input for creating a course
type CreateCourseInput struct {
	Title         string `json:"title" binding:"required,min=3,max=150"`
	Subject       string `json:"subject" binding:"required"`
	Description   string `json:"description"`
	Level         string `json:"level"`
	Price         int    `json:"price" binding:"omitempty,min=0"`
	DurationWeeks int    `json:"durationWeeks" binding:"omitempty,min=1"`
}

// UpdateCourseInput represents input for updating a course
type UpdateCourseInput struct {
	Title         string `json:"title" binding:"omitempty,min=3,max=150"`
	Subject       string `json:"subject"`
	Description   string `json:"description"`
	Level         string `json:"level"`
	Price         int    `json:"price" binding:"omitempty,min=0"`
	DurationWeeks int    `json:"durationWeeks" binding:"omitempty,min=1"`
	IsActive      *bool  `json:"isActive"`
}
