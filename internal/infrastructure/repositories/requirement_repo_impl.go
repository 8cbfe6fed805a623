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

// RequirementRepository implements tutoring-requirement data operations
type RequirementRepository struct {
	db *gorm.DB
}

// NewRequirementRepository creates a new requirement repository
func NewRequirementRepository(db *gorm.DB) *RequirementRepository {
	return &RequirementRepository{db: db}
}

// Create creates a new requirement
func (r *RequirementRepository) Create(ctx context.Context, req *entities.Requirement) error {
	if req.ID == uuid.Nil {
		req.ID = utils.GenerateUUIDv7()
	}
	m := &models.Requirement{
		ID:            req.ID,
		StudentID:     req.StudentID,
		Subject:       req.Subject,
		Description:   req.Description,
		City:          req.City,
		PreferredMode: string(req.PreferredMode),
		Budget:        req.Budget,
		Status:        string(req.Status),
		ExpiresAt:     req.ExpiresAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	req.CreatedAt = m.CreatedAt
	req.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a requirement by ID
func (r *RequirementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Requirement, error) {
	var m models.Requirement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return requirementToEntity(&m), nil
}

// UpdateStatus updates a requirement's status
func (r *RequirementRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequirementStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Requirement{}).
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

// ListOpen lists all open requirements, newest first
func (r *RequirementRepository) ListOpen(ctx context.Context) ([]*entities.Requirement, error) {
	var reqModels []models.Requirement
	err := r.db.WithContext(ctx).
		Where("status = ?", string(entities.RequirementOpen)).
		Order("created_at DESC").
		Find(&reqModels).Error
	if err != nil {
		return nil, err
	}
	return requirementsToEntities(reqModels), nil
}

// ListByStudent lists a student's requirements
func (r *RequirementRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entities.Requirement, error) {
	var reqModels []models.Requirement
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&reqModels).Error
	if err != nil {
		return nil, err
	}
	return requirementsToEntities(reqModels), nil
}

// GetExpiredOpen gets open requirements whose deadline has passed
func (r *RequirementRepository) GetExpiredOpen(ctx context.Context, limit int) ([]*entities.Requirement, error) {
	var reqModels []models.Requirement
	err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", string(entities.RequirementOpen), time.Now()).
		Limit(limit).
		Find(&reqModels).Error
	if err != nil {
		return nil, err
	}
	return requirementsToEntities(reqModels), nil
}

// ExpireRequirements marks the given requirements as expired
func (r *RequirementRepository) ExpireRequirements(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Requirement{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{"status": string(entities.RequirementExpired), "updated_at": time.Now()}).
		Error
}

func requirementsToEntities(reqModels []models.Requirement) []*entities.Requirement {
	reqs := make([]*entities.Requirement, 0, len(reqModels))
	for i := range reqModels {
		reqs = append(reqs, requirementToEntity(&reqModels[i]))
	}
	return reqs
}

func requirementToEntity(m *models.Requirement) *entities.Requirement {
	return &entities.Requirement{
		ID:            m.ID,
		StudentID:     m.StudentID,
		Subject:       m.Subject,
		Description:   m.Description,
		City:          m.City,
		PreferredMode: entities.RequirementMode(m.PreferredMode),
		Budget:        m.Budget,
		Status:        entities.RequirementStatus(m.Status),
		ExpiresAt:     m.ExpiresAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
