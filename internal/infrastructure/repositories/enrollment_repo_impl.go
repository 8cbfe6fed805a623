package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tutorlink.backend/internal/domain/entities"
	domainerrors "tutorlink.backend/internal/domain/errors"
	"tutorlink.backend/internal/infrastructure/models"
	"tutorlink.backend/pkg/utils"
)

// EnrollmentRepository implements enrollment data operations
type EnrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create creates a new enrollment
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *entities.Enrollment) error {
	if enrollment.ID == uuid.Nil {
		enrollment.ID = utils.GenerateUUIDv7()
	}
	if enrollment.EnrolledAt.IsZero() {
		enrollment.EnrolledAt = time.Now()
	}
	m := &models.Enrollment{
		ID:         enrollment.ID,
		CourseID:   enrollment.CourseID,
		StudentID:  enrollment.StudentID,
		Status:     string(enrollment.Status),
		EnrolledAt: enrollment.EnrolledAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByCourseAndStudent gets an enrollment by course and student
func (r *EnrollmentRepository) GetByCourseAndStudent(ctx context.Context, courseID, studentID uuid.UUID) (*entities.Enrollment, error) {
	var m models.Enrollment
	err := r.db.WithContext(ctx).
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return enrollmentToEntity(&m), nil
}

// UpdateStatus updates an enrollment's status
func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.EnrollmentStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByTutor lists enrollments across all of a tutor's courses, joined with
// the student user record and the course.
func (r *EnrollmentRepository) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]*entities.EnrolledStudent, error) {
	type row struct {
		models.Enrollment
		CourseTitle    string
		CourseSubject  string
		StudentName    string
		StudentEmail   string
		StudentCreated time.Time
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Table("enrollments").
		Select(`enrollments.*,
			courses.title AS course_title,
			courses.subject AS course_subject,
			users.full_name AS student_name,
			users.email AS student_email,
			users.created_at AS student_created`).
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Joins("JOIN users ON users.id = enrollments.student_id").
		Where("courses.tutor_id = ? AND enrollments.deleted_at IS NULL", tutorID).
		Order("enrollments.enrolled_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	students := make([]*entities.EnrolledStudent, 0, len(rows))
	for i := range rows {
		rw := rows[i]
		students = append(students, &entities.EnrolledStudent{
			Enrollment: enrollmentToEntity(&rw.Enrollment),
			Student: &entities.User{
				ID:        rw.StudentID,
				FullName:  rw.StudentName,
				Email:     rw.StudentEmail,
				Role:      entities.UserRoleStudent,
				CreatedAt: rw.StudentCreated,
			},
			Course: &entities.Course{
				ID:      rw.CourseID,
				TutorID: tutorID,
				Title:   rw.CourseTitle,
				Subject: rw.CourseSubject,
			},
		})
	}
	return students, nil
}

// ListByStudent lists a student's enrollments
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entities.Enrollment, error) {
	var enrollmentModels []models.Enrollment
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("enrolled_at DESC").
		Find(&enrollmentModels).Error
	if err != nil {
		return nil, err
	}
	enrollments := make([]*entities.Enrollment, 0, len(enrollmentModels))
	for i := range enrollmentModels {
		enrollments = append(enrollments, enrollmentToEntity(&enrollmentModels[i]))
	}
	return enrollments, nil
}

func enrollmentToEntity(m *models.Enrollment) *entities.Enrollment {
	return &entities.Enrollment{
		ID:         m.ID,
		CourseID:   m.CourseID,
		StudentID:  m.StudentID,
		Status:     entities.EnrollmentStatus(m.Status),
		EnrolledAt: m.EnrolledAt,
	}
}
