package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// TeachingMode represents how a tutor delivers lessons
type TeachingMode string

const (
	TeachingModeOnline   TeachingMode = "online"
	TeachingModeInPerson TeachingMode = "in_person"
	TeachingModeBoth     TeachingMode = "both"
)

// TutorProfile is the tutor role-profile extension of a User.
// Verified is nullable: a profile created at signup has no moderation
// decision yet, which is distinct from an explicit false.
type TutorProfile struct {
	ID              uuid.UUID   `json:"id"`
	UserID          uuid.UUID   `json:"userId"`
	Verified        null.Bool   `json:"verified"`
	Headline        string      `json:"headline"`
	Bio             null.String `json:"bio"`
	Subjects        string      `json:"subjects"` // comma-separated
	City            string      `json:"city"`
	TeachingMode    TeachingMode `json:"teachingMode"`
	HourlyRate      int         `json:"hourlyRate"`
	ExperienceYears int         `json:"experienceYears"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// SubjectList splits the comma-separated subjects field.
func (p *TutorProfile) SubjectList() []string {
	if p.Subjects == "" {
		return nil
	}
	parts := strings.Split(p.Subjects, ",")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// TeachesSubject reports whether the tutor lists the given subject.
func (p *TutorProfile) TeachesSubject(subject string) bool {
	for _, s := range p.SubjectList() {
		if strings.EqualFold(s, subject) {
			return true
		}
	}
	return false
}

// InstitutionProfile is the institution role-profile extension of a User.
type InstitutionProfile struct {
	ID              uuid.UUID   `json:"id"`
	UserID          uuid.UUID   `json:"userId"`
	Verified        null.Bool   `json:"verified"`
	InstitutionName string      `json:"institutionName"`
	InstitutionType string      `json:"institutionType"`
	EstablishedYear int         `json:"establishedYear"`
	Website         null.String `json:"website"`
	City            string      `json:"city"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// StudentProfile is the student role-profile extension of a User.
// Students are not subject to moderation.
type StudentProfile struct {
	ID         uuid.UUID   `json:"id"`
	UserID     uuid.UUID   `json:"userId"`
	GradeLevel string      `json:"gradeLevel"`
	School     null.String `json:"school"`
	City       string      `json:"city"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// UpdateTutorProfileInput represents a tutor editing their own profile
type UpdateTutorProfileInput struct {
	Headline        string `json:"headline" binding:"omitempty,max=150"`
	Bio             string `json:"bio"`
	Subjects        string `json:"subjects"`
	City            string `json:"city"`
	TeachingMode    string `json:"teachingMode" binding:"omitempty,oneof=online in_person both"`
	HourlyRate      int    `json:"hourlyRate" binding:"omitempty,min=0"`
	ExperienceYears int    `json:"experienceYears" binding:"omitempty,min=0"`
}

// UpdateInstitutionProfileInput represents an institution editing their own profile
type UpdateInstitutionProfileInput struct {
	InstitutionName string `json:"institutionName" binding:"omitempty,max=255"`
	InstitutionType string `json:"institutionType"`
	EstablishedYear int    `json:"establishedYear" binding:"omitempty,min=1800"`
	Website         string `json:"website"`
	City            string `json:"city"`
}
