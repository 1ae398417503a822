package usecase

import (
	"context"

	"boral/internal/domain/entity"
)

// DeviceRegistration is what a client sends to receive push notifications.
type DeviceRegistration struct {
	FCMToken string
	DeviceID string
	Platform entity.Platform
}

// DeviceUsecase manages the caller's push notification devices.
type DeviceUsecase interface {
	// RegisterDevice upserts by client device ID. A known device gets the new token and is reactivated.
	RegisterDevice(ctx context.Context, userID string, registration *DeviceRegistration) (*entity.Device, error)

	UpdateFCMToken(ctx context.Context, userID, deviceID, fcmToken string) error

	// GetUserDevices lists only active devices.
	GetUserDevices(ctx context.Context, userID string) ([]*entity.Device, error)

	DeactivateDevice(ctx context.Context, userID, deviceID string) error
}
