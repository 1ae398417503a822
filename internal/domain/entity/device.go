package entity

import "time"

// Platform is the mobile OS a device reports at registration.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// Device is a push notification target owned by a user. DeviceID is chosen by the
// client and stays stable across FCM token rotations.
type Device struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FCMToken  string    `json:"fcm_token"`
	DeviceID  string    `json:"device_id"`
	Platform  Platform  `json:"platform"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
