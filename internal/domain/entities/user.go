package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleStudent     UserRole = "student"
	UserRoleTutor       UserRole = "tutor"
	UserRoleInstitution UserRole = "institution"
	UserRoleAdmin       UserRole = "admin"
)

// Moderatable reports whether users with this role go through admin verification.
func (r UserRole) Moderatable() bool {
	return r == UserRoleTutor || r == UserRoleInstitution
}

// User represents a user entity
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string     `json:"email"`
	FullName     string     `json:"fullName"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"-"`
}

// RegisterInput represents input for role-based signup
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=student tutor institution"`

	// Role-specific optional fields collected by the signup wizard.
	GradeLevel      string `json:"gradeLevel"`
	School          string `json:"school"`
	Subjects        string `json:"subjects"`
	City            string `json:"city"`
	TeachingMode    string `json:"teachingMode"`
	HourlyRate      int    `json:"hourlyRate"`
	InstitutionName string `json:"institutionName"`
	InstitutionType string `json:"institutionType"`
	EstablishedYear int    `json:"establishedYear"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"` // If true, store tokens in Redis and return SessionID
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	User         *User  `json:"user"`
}

// ChangePasswordInput represents input for changing user password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required,min=8"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}
