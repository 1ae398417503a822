package model

// MessageModel is the document stored in the 'messages' collection.
type MessageModel struct {
	ID         string `bson:"id"`
	SenderID   string `bson:"sender_id"`
	ReceiverID string `bson:"receiver_id"`
	Content    string `bson:"content"`
	IsRead     bool   `bson:"is_read"`
	CreatedAt  string `bson:"created_at"`
}

// ConversationRow is one result of the conversation aggregation.
type ConversationRow struct {
	CounterpartID string       `bson:"_id"`
	LastMessage   MessageModel `bson:"last_message"`
	UnreadCount   int          `bson:"unread_count"`
}
