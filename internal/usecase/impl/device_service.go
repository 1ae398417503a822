package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"
	"boral/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or refreshes the token of the one with the same device_id
func (s *deviceService) RegisterDevice(ctx context.Context, userID string, registration *usecase.DeviceRegistration) (*entity.Device, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find devices by user: %w", err)
	}

	for _, device := range devices {
		if device.DeviceID != registration.DeviceID {
			continue
		}

		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, registration.FCMToken); err != nil {
			return nil, fmt.Errorf("failed to update FCM token: %w", err)
		}

		updatedDevice, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to find device by ID: %w", err)
		}

		return updatedDevice, nil
	}

	now := time.Now().UTC()
	device := &entity.Device{
		ID:        uuid.NewString(),
		UserID:    userID,
		FCMToken:  registration.FCMToken,
		DeviceID:  registration.DeviceID,
		Platform:  registration.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("device already registered")
		}

		return nil, fmt.Errorf("failed to create device: %w", err)
	}

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, userID, deviceID, fcmToken string) error {
	if _, err := s.requireOwnedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return fmt.Errorf("failed to update FCM token: %w", err)
	}

	return nil
}

// GetUserDevices retrieves all active devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID string) ([]*entity.Device, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find active devices by user: %w", err)
	}

	return devices, nil
}

// DeactivateDevice marks a device inactive
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID string) error {
	if _, err := s.requireOwnedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeactivateDevice(ctx, deviceID); err != nil {
		return fmt.Errorf("failed to deactivate device: %w", err)
	}

	return nil
}

// requireOwnedDevice reports a missing device before a foreign one.
func (s *deviceService) requireOwnedDevice(ctx context.Context, userID, deviceID string) (*entity.Device, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound.WrapMessage("device " + deviceID + " not found")
		}

		return nil, fmt.Errorf("failed to find device by ID: %w", err)
	}

	if device.UserID != userID {
		return nil, domainerrors.ErrDeviceOwnershipViolation.WrapMessage("device " + deviceID)
	}

	return device, nil
}
