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

// VerificationRequestRepository implements verification-request data operations
type VerificationRequestRepository struct {
	db *gorm.DB
}

// NewVerificationRequestRepository creates a new verification request repository
func NewVerificationRequestRepository(db *gorm.DB) *VerificationRequestRepository {
	return &VerificationRequestRepository{db: db}
}

// Create creates a new verification request
func (r *VerificationRequestRepository) Create(ctx context.Context, req *entities.VerificationRequest) error {
	if req.ID == uuid.Nil {
		req.ID = utils.GenerateUUIDv7()
	}
	m := &models.VerificationRequest{
		ID:              req.ID,
		UserID:          req.UserID,
		UserType:        string(req.UserType),
		Status:          string(req.Status),
		VerifiedAt:      req.VerifiedAt,
		RejectionReason: req.RejectionReason.Ptr(),
	}
	if req.VerifiedBy.Valid {
		verifiedBy := req.VerifiedBy.UUID
		m.VerifiedBy = &verifiedBy
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	req.CreatedAt = m.CreatedAt
	req.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUserID gets the verification request for a user. Zero-or-one row is
// assumed; when history left duplicates behind, the newest row wins.
func (r *VerificationRequestRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.VerificationRequest, error) {
	var m models.VerificationRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return verificationRequestToEntity(&m), nil
}

// Update updates a verification request's decision fields
func (r *VerificationRequestRepository) Update(ctx context.Context, req *entities.VerificationRequest) error {
	updates := map[string]interface{}{
		"status":     string(req.Status),
		"updated_at": time.Now(),
	}
	if req.VerifiedBy.Valid {
		updates["verified_by"] = req.VerifiedBy.UUID
	}
	if req.VerifiedAt != nil {
		updates["verified_at"] = *req.VerifiedAt
	}
	if req.RejectionReason.Valid {
		updates["rejection_reason"] = req.RejectionReason.String
	}

	result := r.db.WithContext(ctx).Model(&models.VerificationRequest{}).Where("id = ?", req.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByUserIDs loads verification requests for a set of users
func (r *VerificationRequestRepository) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entities.VerificationRequest, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var reqModels []models.VerificationRequest
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("updated_at ASC").
		Find(&reqModels).Error
	if err != nil {
		return nil, err
	}
	reqs := make([]*entities.VerificationRequest, 0, len(reqModels))
	for i := range reqModels {
		reqs = append(reqs, verificationRequestToEntity(&reqModels[i]))
	}
	return reqs, nil
}

// ListByStatus lists verification requests in a given status
func (r *VerificationRequestRepository) ListByStatus(ctx context.Context, status entities.VerificationRequestStatus) ([]*entities.VerificationRequest, error) {
	var reqModels []models.VerificationRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&reqModels).Error
	if err != nil {
		return nil, err
	}
	reqs := make([]*entities.VerificationRequest, 0, len(reqModels))
	for i := range reqModels {
		reqs = append(reqs, verificationRequestToEntity(&reqModels[i]))
	}
	return reqs, nil
}

func verificationRequestToEntity(m *models.VerificationRequest) *entities.VerificationRequest {
	req := &entities.VerificationRequest{
		ID:              m.ID,
		UserID:          m.UserID,
		UserType:        entities.VerificationUserType(m.UserType),
		Status:          entities.VerificationRequestStatus(m.Status),
		VerifiedAt:      m.VerifiedAt,
		RejectionReason: null.StringFromPtr(m.RejectionReason),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.VerifiedBy != nil {
		req.VerifiedBy = uuid.NullUUID{UUID: *m.VerifiedBy, Valid: true}
	}
	return req
}
