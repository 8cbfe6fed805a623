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

// TutorProfileRepository implements tutor role-profile data operations
type TutorProfileRepository struct {
	db *gorm.DB
}

// NewTutorProfileRepository creates a new tutor profile repository
func NewTutorProfileRepository(db *gorm.DB) *TutorProfileRepository {
	return &TutorProfileRepository{db: db}
}

// Create creates a new tutor profile
func (r *TutorProfileRepository) Create(ctx context.Context, profile *entities.TutorProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = utils.GenerateUUIDv7()
	}
	m := &models.TutorProfile{
		ID:              profile.ID,
		UserID:          profile.UserID,
		Verified:        profile.Verified.Ptr(),
		Headline:        profile.Headline,
		Bio:             profile.Bio.Ptr(),
		Subjects:        profile.Subjects,
		City:            profile.City,
		TeachingMode:    string(profile.TeachingMode),
		HourlyRate:      profile.HourlyRate,
		ExperienceYears: profile.ExperienceYears,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUserID gets a tutor profile by user ID
func (r *TutorProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.TutorProfile, error) {
	var m models.TutorProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return tutorProfileToEntity(&m), nil
}

// Update updates a tutor profile's editable fields
func (r *TutorProfileRepository) Update(ctx context.Context, profile *entities.TutorProfile) error {
	updates := map[string]interface{}{
		"headline":         profile.Headline,
		"subjects":         profile.Subjects,
		"city":             profile.City,
		"teaching_mode":    string(profile.TeachingMode),
		"hourly_rate":      profile.HourlyRate,
		"experience_years": profile.ExperienceYears,
		"updated_at":       time.Now(),
	}
	if profile.Bio.Valid {
		updates["bio"] = profile.Bio.String
	}

	result := r.db.WithContext(ctx).Model(&models.TutorProfile{}).Where("user_id = ?", profile.UserID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetVerified sets the verified flag for a tutor profile
func (r *TutorProfileRepository) SetVerified(ctx context.Context, userID uuid.UUID, verified bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.TutorProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{"verified": verified, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByUserIDs loads profiles for a set of users
func (r *TutorProfileRepository) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entities.TutorProfile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var profileModels []models.TutorProfile
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&profileModels).Error; err != nil {
		return nil, err
	}
	profiles := make([]*entities.TutorProfile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, tutorProfileToEntity(&profileModels[i]))
	}
	return profiles, nil
}

// ListVerified lists verified tutor profiles with optional subject/city filters
func (r *TutorProfileRepository) ListVerified(ctx context.Context, subject, city string) ([]*entities.TutorProfile, error) {
	query := r.db.WithContext(ctx).Where("verified = ?", true).Order("created_at DESC")
	if subject != "" {
		query = query.Where("LOWER(subjects) LIKE LOWER(?)", "%"+subject+"%")
	}
	if city != "" {
		query = query.Where("LOWER(city) = LOWER(?)", city)
	}

	var profileModels []models.TutorProfile
	if err := query.Find(&profileModels).Error; err != nil {
		return nil, err
	}
	profiles := make([]*entities.TutorProfile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, tutorProfileToEntity(&profileModels[i]))
	}
	return profiles, nil
}

func tutorProfileToEntity(m *models.TutorProfile) *entities.TutorProfile {
	return &entities.TutorProfile{
		ID:              m.ID,
		UserID:          m.UserID,
		Verified:        null.BoolFromPtr(m.Verified),
		Headline:        m.Headline,
		Bio:             null.StringFromPtr(m.Bio),
		Subjects:        m.Subjects,
		City:            m.City,
		TeachingMode:    entities.TeachingMode(m.TeachingMode),
		HourlyRate:      m.HourlyRate,
		ExperienceYears: m.ExperienceYears,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
