package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationStatus is the resolved moderation status of a tutor or
// institution user. It is derived on every read and never stored.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// VerificationRequestStatus is the lifecycle status of a durable
// verification request record.
type VerificationRequestStatus string

const (
	RequestStatusPending  VerificationRequestStatus = "pending"
	RequestStatusVerified VerificationRequestStatus = "verified"
	RequestStatusRejected VerificationRequestStatus = "rejected"
)

// VerificationUserType mirrors the historical user_type values carried on
// verification requests ("institute", not "institution").
type VerificationUserType string

const (
	VerificationUserTutor     VerificationUserType = "tutor"
	VerificationUserInstitute VerificationUserType = "institute"
)

// VerificationUserTypeFor maps a user role to its verification user type.
func VerificationUserTypeFor(role UserRole) VerificationUserType {
	if role == UserRoleInstitution {
		return VerificationUserInstitute
	}
	return VerificationUserTutor
}

// VerificationRequest tracks the lifecycle of a moderation decision,
// independent of the role-profile's verified flag. At most one per user is
// assumed (lookup takes the newest row); uniqueness is not enforced.
type VerificationRequest struct {
	ID              uuid.UUID                 `json:"id"`
	UserID          uuid.UUID                 `json:"userId"`
	UserType        VerificationUserType      `json:"userType"`
	Status          VerificationRequestStatus `json:"status"`
	VerifiedBy      uuid.NullUUID             `json:"verifiedBy"`
	VerifiedAt      *time.Time                `json:"verifiedAt,omitempty"`
	RejectionReason null.String               `json:"rejectionReason"`
	CreatedAt       time.Time                 `json:"createdAt"`
	UpdatedAt       time.Time                 `json:"updatedAt"`
}

// ManagedUser is a user row as shown on the admin moderation screen,
// carrying the resolved verification status.
type ManagedUser struct {
	User               *User              `json:"user"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
}

// ModerationResult reports which of the two redundant moderation writes
// succeeded, so callers can apply a stricter policy than the default
// any-write-wins tolerance.
type ModerationResult struct {
	UserID             uuid.UUID          `json:"userId"`
	Status             VerificationStatus `json:"status"`
	RoleProfileWritten bool               `json:"roleProfileWritten"`
	RequestWritten     bool               `json:"requestWritten"`
}
