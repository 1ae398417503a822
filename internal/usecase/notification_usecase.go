package usecase

import "context"

// Push event kinds, used as notification data and metric labels.
const (
	PushEventNewMessage  = "new_message"
	PushEventOrderStatus = "order_status"
)

// PushMessage is a notification addressed to every active device of one user.
type PushMessage struct {
	Event string
	Title string
	Body  string
	Data  map[string]string
}

// PushResult reports the outcome of a push fan-out.
type PushResult struct {
	Sent        int
	Failed      int
	Deactivated int64
}

// NotificationUsecase delivers push notifications to a user's registered devices.
type NotificationUsecase interface {
	// NotifyUser sends msg to the active devices of userID and deactivates devices whose tokens were rejected.
	NotifyUser(ctx context.Context, userID string, msg *PushMessage) (*PushResult, error)
}
