package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"tutorlink.backend/internal/domain/entities"
	domainerrors "tutorlink.backend/internal/domain/errors"
	"tutorlink.backend/internal/domain/repositories"
)

// MessageUsecase handles student/tutor conversations
type MessageUsecase struct {
	conversationRepo repositories.ConversationRepository
	messageRepo      repositories.MessageRepository
	userRepo         repositories.UserRepository
}

// NewMessageUsecase creates a new message usecase
func NewMessageUsecase(
	conversationRepo repositories.ConversationRepository,
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
) *MessageUsecase {
	return &MessageUsecase{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		userRepo:         userRepo,
	}
}

// StartConversation opens (or returns the existing) thread between the acting
// student and a tutor.
func (u *MessageUsecase) StartConversation(ctx context.Context, studentID, tutorID uuid.UUID) (*entities.Conversation, error) {
	tutor, err := u.userRepo.GetByID(ctx, tutorID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("tutor not found")
		}
		return nil, err
	}
	if tutor.Role != entities.UserRoleTutor && tutor.Role != entities.UserRoleInstitution {
		return nil, domainerrors.BadRequest("conversations can only be started with tutors")
	}

	existing, err := u.conversationRepo.GetByPair(ctx, tutorID, studentID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	conv := &entities.Conversation{TutorID: tutorID, StudentID: studentID}
	if err := u.conversationRepo.Create(ctx, conv); err != nil {
		return nil, err
	}
	return conv, nil
}

// ListConversations lists the caller's threads, most recent activity first.
func (u *MessageUsecase) ListConversations(ctx context.Context, userID uuid.UUID) ([]*entities.Conversation, error) {
	return u.conversationRepo.ListByUser(ctx, userID)
}

// SendMessage appends a message to a thread the caller participates in.
func (u *MessageUsecase) SendMessage(ctx context.Context, senderID, conversationID uuid.UUID, body string) (*entities.Message, error) {
	conv, err := u.participantConversation(ctx, senderID, conversationID)
	if err != nil {
		return nil, err
	}

	msg := &entities.Message{
		ConversationID: conv.ID,
		SenderID:       senderID,
		Body:           body,
	}
	if err := u.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	// best effort; the message itself is already durable
	_ = u.conversationRepo.TouchLastMessage(ctx, conv.ID)
	return msg, nil
}

// ListMessages pages through a thread and marks messages to the caller read.
func (u *MessageUsecase) ListMessages(ctx context.Context, userID, conversationID uuid.UUID, limit, offset int) ([]*entities.Message, int64, error) {
	conv, err := u.participantConversation(ctx, userID, conversationID)
	if err != nil {
		return nil, 0, err
	}

	msgs, total, err := u.messageRepo.ListByConversation(ctx, conv.ID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if err := u.messageRepo.MarkRead(ctx, conv.ID, userID); err != nil {
		return nil, 0, err
	}
	return msgs, total, nil
}

func (u *MessageUsecase) participantConversation(ctx context.Context, userID, conversationID uuid.UUID) (*entities.Conversation, error) {
	conv, err := u.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("conversation not found")
		}
		return nil, err
	}
	if conv.TutorID != userID && conv.StudentID != userID {
		return nil, domainerrors.Forbidden("not a participant in this conversation")
	}
	return conv, nil
}
