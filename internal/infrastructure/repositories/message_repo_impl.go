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

// ConversationRepository implements conversation data operations
type ConversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// Create creates a new conversation
func (r *ConversationRepository) Create(ctx context.Context, conv *entities.Conversation) error {
	if conv.ID == uuid.Nil {
		conv.ID = utils.GenerateUUIDv7()
	}
	m := &models.Conversation{
		ID:        conv.ID,
		TutorID:   conv.TutorID,
		StudentID: conv.StudentID,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	conv.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a conversation by ID
func (r *ConversationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Conversation, error) {
	var m models.Conversation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return conversationToEntity(&m), nil
}

// GetByPair gets the conversation between a tutor and a student
func (r *ConversationRepository) GetByPair(ctx context.Context, tutorID, studentID uuid.UUID) (*entities.Conversation, error) {
	var m models.Conversation
	err := r.db.WithContext(ctx).
		Where("tutor_id = ? AND student_id = ?", tutorID, studentID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return conversationToEntity(&m), nil
}

// ListByUser lists conversations for either side, most recent activity first
func (r *ConversationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Conversation, error) {
	var convModels []models.Conversation
	err := r.db.WithContext(ctx).
		Where("tutor_id = ? OR student_id = ?", userID, userID).
		Order("last_message_at DESC").
		Find(&convModels).Error
	if err != nil {
		return nil, err
	}
	convs := make([]*entities.Conversation, 0, len(convModels))
	for i := range convModels {
		convs = append(convs, conversationToEntity(&convModels[i]))
	}
	return convs, nil
}

// TouchLastMessage bumps the conversation's last-activity timestamp
func (r *ConversationRepository) TouchLastMessage(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&models.Conversation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"last_message_at": now, "updated_at": now}).
		Error
}

func conversationToEntity(m *models.Conversation) *entities.Conversation {
	return &entities.Conversation{
		ID:            m.ID,
		TutorID:       m.TutorID,
		StudentID:     m.StudentID,
		LastMessageAt: m.LastMessageAt,
		CreatedAt:     m.CreatedAt,
	}
}

// MessageRepository implements message data operations
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create creates a new message
func (r *MessageRepository) Create(ctx context.Context, msg *entities.Message) error {
	if msg.ID == uuid.Nil {
		msg.ID = utils.GenerateUUIDv7()
	}
	m := &models.Message{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		Body:           msg.Body,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	msg.CreatedAt = m.CreatedAt
	return nil
}

// ListByConversation lists messages in a conversation, oldest first
func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*entities.Message, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Message{}).Where("conversation_id = ?", conversationID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var msgModels []models.Message
	if err := query.Find(&msgModels).Error; err != nil {
		return nil, 0, err
	}

	msgs := make([]*entities.Message, 0, len(msgModels))
	for i := range msgModels {
		m := msgModels[i]
		msgs = append(msgs, &entities.Message{
			ID:             m.ID,
			ConversationID: m.ConversationID,
			SenderID:       m.SenderID,
			Body:           m.Body,
			ReadAt:         m.ReadAt,
			CreatedAt:      m.CreatedAt,
		})
	}
	return msgs, total, nil
}

// MarkRead marks all messages sent to the reader in a conversation as read
func (r *MessageRepository) MarkRead(ctx context.Context, conversationID, readerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND read_at IS NULL", conversationID, readerID).
		Update("read_at", time.Now()).
		Error
}
