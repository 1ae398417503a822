package repository

import (
	"context"

	"boral/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository stores push notification devices. Devices are never removed,
// only deactivated.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *entity.Device) error
	FindDeviceByID(ctx context.Context, id string) (*entity.Device, error)

	// FindDevicesByUser includes inactive devices so re-registration can revive them.
	FindDevicesByUser(ctx context.Context, userID string) ([]*entity.Device, error)
	FindActiveDevicesByUser(ctx context.Context, userID string) ([]*entity.Device, error)

	// UpdateFCMToken sets the token and marks the device active again.
	UpdateFCMToken(ctx context.Context, deviceID string, fcmToken string) error
	DeactivateDevice(ctx context.Context, id string) error

	// DeactivateByTokens is fed the tokens FCM rejected as unregistered and
	// returns how many devices it switched off.
	DeactivateByTokens(ctx context.Context, tokens []string) (int64, error)
}
