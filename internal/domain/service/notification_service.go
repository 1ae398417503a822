package service

import "context"

// MaxMulticastTokens is the largest token batch one SendMulticast call accepts.
const MaxMulticastTokens = 500

// Notification is the visible content and data payload of a push.
type Notification struct {
	Title string
	Body  string
	Data  map[string]string
}

// MulticastResult reports the per-token outcome of one multicast.
type MulticastResult struct {
	SuccessCount int
	FailureCount int

	// InvalidTokens were rejected permanently; their devices should stop receiving pushes.
	InvalidTokens []string
}

// NotificationService sends push notifications to device tokens.
type NotificationService interface {
	// SendMulticast sends n to at most MaxMulticastTokens tokens.
	SendMulticast(ctx context.Context, tokens []string, n *Notification) (*MulticastResult, error)
}
