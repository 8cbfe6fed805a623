package repositories

import (
	"context"

	"github.com/google/uuid"
	"tutorlink.backend/internal/domain/entities"
)

// TutorProfileRepository defines tutor role-profile data operations.
// GetByUserID returns domain ErrNotFound when no row exists; callers treat
// that as the insert-fallback path, not as a failure.
type TutorProfileRepository interface {
	Create(ctx context.Context, profile *entities.TutorProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.TutorProfile, error)
	Update(ctx context.Context, profile *entities.TutorProfile) error
	SetVerified(ctx context.Context, userID uuid.UUID, verified bool) error
	ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entities.TutorProfile, error)
	ListVerified(ctx context.Context, subject, city string) ([]*entities.TutorProfile, error)
}

// InstitutionProfileRepository defines institution role-profile data operations
type InstitutionProfileRepository interface {
	Create(ctx context.Context, profile *entities.InstitutionProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.InstitutionProfile, error)
	Update(ctx context.Context, profile *entities.InstitutionProfile) error
	SetVerified(ctx context.Context, userID uuid.UUID, verified bool) error
	ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entities.InstitutionProfile, error)
}

// StudentProfileRepository defines student profile data operations
type StudentProfileRepository interface {
	Create(ctx context.Context, profile *entities.StudentProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.StudentProfile, error)
	Update(ctx context.Context, profile *entities.StudentProfile) error
}
