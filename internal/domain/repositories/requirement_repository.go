package repositories

import (
	"context"

	"github.com/google/uuid"
	"tutorlink.backend/internal/domain/entities"
)

// RequirementRepository defines tutoring-requirement data operations
type RequirementRepository interface {
	Create(ctx context.Context, req *entities.Requirement) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Requirement, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequirementStatus) error
	ListOpen(ctx context.Context) ([]*entities.Requirement, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entities.Requirement, error)
	GetExpiredOpen(ctx context.Context, limit int) ([]*entities.Requirement, error)
	ExpireRequirements(ctx context.Context, ids []uuid.UUID) error
}
