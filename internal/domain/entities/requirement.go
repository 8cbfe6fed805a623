package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequirementStatus represents the lifecycle of a tutoring requirement
type RequirementStatus string

const (
	RequirementOpen    RequirementStatus = "open"
	RequirementClosed  RequirementStatus = "closed"
	RequirementExpired RequirementStatus = "expired"
)

// RequirementMode is the student's preferred lesson delivery
type RequirementMode string

const (
	RequirementModeOnline   RequirementMode = "online"
	RequirementModeInPerson RequirementMode = "in_person"
	RequirementModeAny      RequirementMode = "any"
)

// Requirement is a student's tutoring request, browsed by verified tutors.
type Requirement struct {
	ID            uuid.UUID         `json:"id"`
	StudentID     uuid.UUID         `json:"studentId"`
	Subject       string            `json:"subject"`
	Description   string            `json:"description"`
	City          string            `json:"city"`
	PreferredMode RequirementMode   `json:"preferredMode"`
	Budget        int               `json:"budget"` // per hour, 0 = unspecified
	Status        RequirementStatus `json:"status"`
	ExpiresAt     time.Time         `json:"expiresAt"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// MatchesTutor reports whether the requirement fits a tutor's profile:
// subject taught, location compatible with the delivery mode, and budget
// covering the hourly rate when both sides state one.
func (r *Requirement) MatchesTutor(p *TutorProfile) bool {
	if p == nil || r.Status != RequirementOpen {
		return false
	}
	if !p.TeachesSubject(r.Subject) {
		return false
	}
	switch r.PreferredMode {
	case RequirementModeOnline:
		if p.TeachingMode == TeachingModeInPerson {
			return false
		}
	case RequirementModeInPerson:
		if p.TeachingMode == TeachingModeOnline {
			return false
		}
		if !strings.EqualFold(r.City, p.City) {
			return false
		}
	default:
		// "any": in-person tutors still need to be in the same city
		if p.TeachingMode == TeachingModeInPerson && !strings.EqualFold(r.City, p.City) {
			return false
		}
	}
	if r.Budget > 0 && p.HourlyRate > 0 && p.HourlyRate > r.Budget {
		return false
	}
	return true
}

// CreateRequirementInput represents input for posting a requirement
type CreateRequirementInput struct {
	Subject       string `json:"subject" binding:"required"`
	Description   string `json:"description"`
	City          string `json:"city"`
	PreferredMode string `json:"preferredMode" binding:"omitempty,oneof=online in_person any"`
	Budget        int    `json:"budget" binding:"omitempty,min=0"`
	ExpiresInDays int    `json:"expiresInDays" binding:"omitempty,min=1,max=90"`
}
