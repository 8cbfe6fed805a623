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

// CourseRepository implements course data operations
type CourseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *entities.Course) error {
	if course.ID == uuid.Nil {
		course.ID = utils.GenerateUUIDv7()
	}
	m := &models.Course{
		ID:            course.ID,
		TutorID:       course.TutorID,
		Title:         course.Title,
		Subject:       course.Subject,
		Description:   course.Description,
		Level:         course.Level,
		Price:         course.Price,
		DurationWeeks: course.DurationWeeks,
		IsActive:      course.IsActive,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	course.CreatedAt = m.CreatedAt
	course.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Course, error) {
	var m models.Course
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return courseToEntity(&m), nil
}

// Update updates a course
func (r *CourseRepository) Update(ctx context.Context, course *entities.Course) error {
	updates := map[string]interface{}{
		"title":          course.Title,
		"subject":        course.Subject,
		"description":    course.Description,
		"level":          course.Level,
		"price":          course.Price,
		"duration_weeks": course.DurationWeeks,
		"is_active":      course.IsActive,
		"updated_at":     time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.Course{}).Where("id = ?", course.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft deletes a course
func (r *CourseRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Course{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByTutor lists all courses of a tutor
func (r *CourseRepository) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]*entities.Course, error) {
	var courseModels []models.Course
	err := r.db.WithContext(ctx).
		Where("tutor_id = ?", tutorID).
		Order("created_at DESC").
		Find(&courseModels).Error
	if err != nil {
		return nil, err
	}
	courses := make([]*entities.Course, 0, len(courseModels))
	for i := range courseModels {
		courses = append(courses, courseToEntity(&courseModels[i]))
	}
	return courses, nil
}

// ListActive lists active courses with optional subject filter and pagination
func (r *CourseRepository) ListActive(ctx context.Context, subject string, limit, offset int) ([]*entities.Course, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Course{}).Where("is_active = ?", true)
	if subject != "" {
		query = query.Where("LOWER(subject) = LOWER(?)", subject)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var courseModels []models.Course
	if err := query.Find(&courseModels).Error; err != nil {
		return nil, 0, err
	}
	courses := make([]*entities.Course, 0, len(courseModels))
	for i := range courseModels {
		courses = append(courses, courseToEntity(&courseModels[i]))
	}
	return courses, total, nil
}

func courseToEntity(m *models.Course) *entities.Course {
	return &entities.Course{
		ID:            m.ID,
		TutorID:       m.TutorID,
		Title:         m.Title,
		Subject:       m.Subject,
		Description:   m.Description,
		Level:         m.Level,
		Price:         m.Price,
		DurationWeeks: m.DurationWeeks,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
