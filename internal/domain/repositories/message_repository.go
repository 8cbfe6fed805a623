package repositories

import (
	"context"

	"github.com/google/uuid"
	"tutorlink.backend/internal/domain/entities"
)

// ConversationRepository defines conversation data operations
type ConversationRepository interface {
	Create(ctx context.Context, conv *entities.Conversation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Conversation, error)
	GetByPair(ctx context.Context, tutorID, studentID uuid.UUID) (*entities.Conversation, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Conversation, error)
	TouchLastMessage(ctx context.Context, id uuid.UUID) error
}

// MessageRepository defines message data operations
type MessageRepository interface {
	Create(ctx context.Context, msg *entities.Message) error
	ListByConversation(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*entities.Message, int64, error)
	MarkRead(ctx context.Context, conversationID, readerID uuid.UUID) error
}
