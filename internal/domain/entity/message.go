package entity

import "time"

// Message is a direct message between two users. Only IsRead changes after creation.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

// ConversationSummary is the newest message exchanged with one counterpart.
type ConversationSummary struct {
	CounterpartID string
	LastMessage   *Message
	UnreadCount   int // Messages from the counterpart not yet read by the caller.
}
