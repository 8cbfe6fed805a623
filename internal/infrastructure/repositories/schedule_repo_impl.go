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

// ScheduleRepository implements schedule-slot data operations
type ScheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create creates a new schedule slot
func (r *ScheduleRepository) Create(ctx context.Context, slot *entities.ScheduleSlot) error {
	if slot.ID == uuid.Nil {
		slot.ID = utils.GenerateUUIDv7()
	}
	m := &models.ScheduleSlot{
		ID:       slot.ID,
		TutorID:  slot.TutorID,
		StartsAt: slot.StartsAt,
		EndsAt:   slot.EndsAt,
		Status:   string(slot.Status),
		Notes:    slot.Notes,
	}
	if slot.CourseID.Valid {
		courseID := slot.CourseID.UUID
		m.CourseID = &courseID
	}
	if slot.StudentID.Valid {
		studentID := slot.StudentID.UUID
		m.StudentID = &studentID
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	slot.CreatedAt = m.CreatedAt
	slot.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a schedule slot by ID
func (r *ScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ScheduleSlot, error) {
	var m models.ScheduleSlot
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return slotToEntity(&m), nil
}

// Update updates a schedule slot's booking fields
func (r *ScheduleRepository) Update(ctx context.Context, slot *entities.ScheduleSlot) error {
	updates := map[string]interface{}{
		"status":     string(slot.Status),
		"notes":      slot.Notes,
		"updated_at": time.Now(),
	}
	if slot.StudentID.Valid {
		updates["student_id"] = slot.StudentID.UUID
	}

	result := r.db.WithContext(ctx).Model(&models.ScheduleSlot{}).Where("id = ?", slot.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft deletes a schedule slot
func (r *ScheduleRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ScheduleSlot{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByTutor lists a tutor's slots within a time range
func (r *ScheduleRepository) ListByTutor(ctx context.Context, tutorID uuid.UUID, from, to time.Time) ([]*entities.ScheduleSlot, error) {
	query := r.db.WithContext(ctx).Where("tutor_id = ?", tutorID)
	if !from.IsZero() {
		query = query.Where("starts_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("starts_at < ?", to)
	}

	var slotModels []models.ScheduleSlot
	if err := query.Order("starts_at ASC").Find(&slotModels).Error; err != nil {
		return nil, err
	}
	return slotsToEntities(slotModels), nil
}

// ListByStudent lists slots booked by a student
func (r *ScheduleRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entities.ScheduleSlot, error) {
	var slotModels []models.ScheduleSlot
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("starts_at ASC").
		Find(&slotModels).Error
	if err != nil {
		return nil, err
	}
	return slotsToEntities(slotModels), nil
}

func slotsToEntities(slotModels []models.ScheduleSlot) []*entities.ScheduleSlot {
	slots := make([]*entities.ScheduleSlot, 0, len(slotModels))
	for i := range slotModels {
		slots = append(slots, slotToEntity(&slotModels[i]))
	}
	return slots
}

func slotToEntity(m *models.ScheduleSlot) *entities.ScheduleSlot {
	slot := &entities.ScheduleSlot{
		ID:        m.ID,
		TutorID:   m.TutorID,
		StartsAt:  m.StartsAt,
		EndsAt:    m.EndsAt,
		Status:    entities.SlotStatus(m.Status),
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.CourseID != nil {
		slot.CourseID = uuid.NullUUID{UUID: *m.CourseID, Valid: true}
	}
	if m.StudentID != nil {
		slot.StudentID = uuid.NullUUID{UUID: *m.StudentID, Valid: true}
	}
	return slot
}
