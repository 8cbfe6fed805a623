package repositories

import (
	"context"

	"github.com/google/uuid"
	"tutorlink.backend/internal/domain/entities"
)

// VerificationRequestRepository defines verification-request data operations.
// GetByUserID has zero-or-one semantics: the newest row for the user is
// returned, domain ErrNotFound when none exists.
type VerificationRequestRepository interface {
	Create(ctx context.Context, req *entities.VerificationRequest) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.VerificationRequest, error)
	Update(ctx context.Context, req *entities.VerificationRequest) error
	ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entities.VerificationRequest, error)
	ListByStatus(ctx context.Context, status entities.VerificationRequestStatus) ([]*entities.VerificationRequest, error)
}
