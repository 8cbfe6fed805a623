package entities

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is a student/tutor message thread. One per pair.
type Conversation struct {
	ID            uuid.UUID  `json:"id"`
	TutorID       uuid.UUID  `json:"tutorId"`
	StudentID     uuid.UUID  `json:"studentId"`
	LastMessageAt *time.Time `json:"lastMessageAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Message is a single message within a conversation
type Message struct {
	ID             uuid.UUID  `json:"id"`
	ConversationID uuid.UUID  `json:"conversationId"`
	SenderID       uuid.UUID  `json:"senderId"`
	Body           string     `json:"body"`
	ReadAt         *time.Time `json:"readAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// SendMessageInput represents input for sending a message
type SendMessageInput struct {
	Body string `json:"body" binding:"required,min=1,max=4000"`
}

// StartConversationInput represents input for opening a thread with a tutor
type StartConversationInput struct {
	TutorID string `json:"tutorId" binding:"required,uuid"`
}
