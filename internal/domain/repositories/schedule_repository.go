package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"tutorlink.backend/internal/domain/entities"
)

// ScheduleRepository defines schedule-slot data operations
type ScheduleRepository interface {
	Create(ctx context.Context, slot *entities.ScheduleSlot) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ScheduleSlot, error)
	Update(ctx context.Context, slot *entities.ScheduleSlot) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ListByTutor(ctx context.Context, tutorID uuid.UUID, from, to time.Time) ([]*entities.ScheduleSlot, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entities.ScheduleSlot, error)
}
