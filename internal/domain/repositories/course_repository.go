package repositories

import (
	"context"

	"github.com/google/uuid"
	"tutorlink.backend/internal/domain/entities"
)

// CourseRepository defines course data operations
type CourseRepository interface {
	Create(ctx context.Context, course *entities.Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Course, error)
	Update(ctx context.Context, course *entities.Course) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]*entities.Course, error)
	ListActive(ctx context.Context, subject string, limit, offset int) ([]*entities.Course, int64, error)
}

// EnrollmentRepository defines enrollment data operations
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *entities.Enrollment) error
	GetByCourseAndStudent(ctx context.Context, courseID, studentID uuid.UUID) (*entities.Enrollment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.EnrollmentStatus) error
	ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]*entities.EnrolledStudent, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entities.Enrollment, error)
}
