package repository

import (
	"context"

	"boral/internal/domain/entity"
)

// MessageRepository defines the interface for direct message persistence.
type MessageRepository interface {
	// Create persists a new message.
	Create(ctx context.Context, msg *entity.Message) error

	// ListThread retrieves messages exchanged between userA and userB, oldest first.
	ListThread(ctx context.Context, userA, userB string, limit int) ([]*entity.Message, error)

	// MarkRead flags every unread message from senderID to receiverID as read.
	MarkRead(ctx context.Context, senderID, receiverID string) (int64, error)

	// ListConversations returns, per counterpart of userID, the newest message and the unread count,
	// newest conversation first.
	ListConversations(ctx context.Context, userID string) ([]*entity.ConversationSummary, error)
}
