package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"tutorlink.backend/internal/domain/entities"
	domainerrors "tutorlink.backend/internal/domain/errors"
	"tutorlink.backend/internal/infrastructure/models"
	"tutorlink.backend/pkg/utils"
)

// StudentProfileRepository implements student profile data operations
type StudentProfileRepository struct {
	db *gorm.DB
}

// NewStudentProfileRepository creates a new student profile repository
func NewStudentProfileRepository(db *gorm.DB) *StudentProfileRepository {
	return &StudentProfileRepository{db: db}
}

// Create creates a new student profile
func (r *StudentProfileRepository) Create(ctx context.Context, profile *entities.StudentProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = utils.GenerateUUIDv7()
	}
	m := &models.StudentProfile{
		ID:         profile.ID,
		UserID:     profile.UserID,
		GradeLevel: profile.GradeLevel,
		School:     profile.School.Ptr(),
		City:       profile.City,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUserID gets a student profile by user ID
func (r *StudentProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.StudentProfile, error) {
	var m models.StudentProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.StudentProfile{
		ID:         m.ID,
		UserID:     m.UserID,
		GradeLevel: m.GradeLevel,
		School:     null.StringFromPtr(m.School),
		City:       m.City,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}

// Update updates a student profile's editable fields
func (r *StudentProfileRepository) Update(ctx context.Context, profile *entities.StudentProfile) error {
	updates := map[string]interface{}{
		"grade_level": profile.GradeLevel,
		"city":        profile.City,
		"updated_at":  time.Now(),
	}
	if profile.School.Valid {
		updates["school"] = profile.School.String
	}

	result := r.db.WithContext(ctx).Model(&models.StudentProfile{}).Where("user_id = ?", profile.UserID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
