package usecase

import (
	"context"

	"boral/internal/domain/entity"
)

// SendMessageInput defines a new direct message.
type SendMessageInput struct {
	ReceiverID string
	Content    string
}

// Conversation is the latest exchange with one counterpart.
type Conversation struct {
	User        *entity.User    `json:"user"`
	LastMessage *entity.Message `json:"last_message"`
	UnreadCount int             `json:"unread_count"`
}

// MessageUsecase defines direct messaging between users.
type MessageUsecase interface {
	Conversations(ctx context.Context, userID string) ([]*Conversation, error)

	// Thread returns the messages exchanged with counterpartID, oldest first,
	// after marking the ones the caller received as read.
	Thread(ctx context.Context, userID, counterpartID string) ([]*entity.Message, error)

	Send(ctx context.Context, senderID string, input *SendMessageInput) (*entity.Message, error)
}
