package usecases

import (
	"strings"

	"github.com/volatiletech/null/v8"
	"tutorlink.backend/internal/domain/entities"
)

// SessionOverrides carries the admin's in-session moderation decisions into
// status resolution.
type SessionOverrides struct {
	Approved bool
	Rejected bool
}

// ResolveVerificationStatus derives the verification status shown for a user.
// It is total: every input combination maps to exactly one status, in strict
// priority order. A session rejection wins over everything, then a session
// approval, then the role-profile's verified flag, then the durable
// verification request. With no signal at all the status is pending.
//
// The role-profile flag is accepted in whatever shape older writers left it:
// a plain bool, a nullable bool, a "true"/"1" string or a numeric 1 all count
// as verified. A null or absent flag is not a signal either way.
func ResolveVerificationStatus(overrides SessionOverrides, profileVerified interface{}, request *entities.VerificationRequest) entities.VerificationStatus {
	if overrides.Rejected {
		return entities.VerificationRejected
	}
	if overrides.Approved {
		return entities.VerificationApproved
	}
	if verifiedFlagIsTrue(profileVerified) {
		return entities.VerificationApproved
	}
	if request != nil {
		switch request.Status {
		case entities.RequestStatusVerified:
			return entities.VerificationApproved
		case entities.RequestStatusRejected:
			return entities.VerificationRejected
		}
	}
	return entities.VerificationPending
}

// verifiedFlagIsTrue coerces the historically loose verified flag. Only an
// unambiguous true counts; anything else, including null and unknown shapes,
// is treated as no signal.
func verifiedFlagIsTrue(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case *bool:
		return val != nil && *val
	case null.Bool:
		return val.Valid && val.Bool
	case string:
		s := strings.ToLower(strings.TrimSpace(val))
		return s == "true" || s == "1"
	case int:
		return val == 1
	case int64:
		return val == 1
	case float64:
		return val == 1
	default:
		return false
	}
}
