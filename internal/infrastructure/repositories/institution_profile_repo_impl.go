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

// InstitutionProfileRepository implements institution role-profile data operations
type InstitutionProfileRepository struct {
	db *gorm.DB
}

// NewInstitutionProfileRepository creates a new institution profile repository
func NewInstitutionProfileRepository(db *gorm.DB) *InstitutionProfileRepository {
	return &InstitutionProfileRepository{db: db}
}

// Create creates a new institution profile
func (r *InstitutionProfileRepository) Create(ctx context.Context, profile *entities.InstitutionProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = utils.GenerateUUIDv7()
	}
	m := &models.InstitutionProfile{
		ID:              profile.ID,
		UserID:          profile.UserID,
		Verified:        profile.Verified.Ptr(),
		InstitutionName: profile.InstitutionName,
		InstitutionType: profile.InstitutionType,
		EstablishedYear: profile.EstablishedYear,
		Website:         profile.Website.Ptr(),
		City:            profile.City,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUserID gets an institution profile by user ID
func (r *InstitutionProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.InstitutionProfile, error) {
	var m models.InstitutionProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return institutionProfileToEntity(&m), nil
}

// Update updates an institution profile's editable fields
func (r *InstitutionProfileRepository) Update(ctx context.Context, profile *entities.InstitutionProfile) error {
	updates := map[string]interface{}{
		"institution_name": profile.InstitutionName,
		"institution_type": profile.InstitutionType,
		"established_year": profile.EstablishedYear,
		"city":             profile.City,
		"updated_at":       time.Now(),
	}
	if profile.Website.Valid {
		updates["website"] = profile.Website.String
	}

	result := r.db.WithContext(ctx).Model(&models.InstitutionProfile{}).Where("user_id = ?", profile.UserID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetVerified sets the verified flag for an institution profile
func (r *InstitutionProfileRepository) SetVerified(ctx context.Context, userID uuid.UUID, verified bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.InstitutionProfile{}).
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
func (r *InstitutionProfileRepository) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entities.InstitutionProfile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var profileModels []models.InstitutionProfile
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&profileModels).Error; err != nil {
		return nil, err
	}
	profiles := make([]*entities.InstitutionProfile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, institutionProfileToEntity(&profileModels[i]))
	}
	return profiles, nil
}

func institutionProfileToEntity(m *models.InstitutionProfile) *entities.InstitutionProfile {
	return &entities.InstitutionProfile{
		ID:              m.ID,
		UserID:          m.UserID,
		Verified:        null.BoolFromPtr(m.Verified),
		InstitutionName: m.InstitutionName,
		InstitutionType: m.InstitutionType,
		EstablishedYear: m.EstablishedYear,
		Website:         null.StringFromPtr(m.Website),
		City:            m.City,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
