package impl

import (
	"context"
	"testing"

	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"
	mockRepo "boral/internal/mocks/repository"
	"boral/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	registration := &usecase.DeviceRegistration{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "android",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, "u1").
		Return([]*entity.Device{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, "u1", registration)
	require.NoError(t, err)
	assert.NotEmpty(t, device.ID)
	assert.Equal(t, "u1", device.UserID)
	assert.Equal(t, registration.FCMToken, device.FCMToken)
	assert.Equal(t, registration.DeviceID, device.DeviceID)
	assert.Equal(t, registration.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	existingDevice := &entity.Device{
		ID:       "d1",
		UserID:   "u1",
		FCMToken: "old-token",
		DeviceID: "device-123",
		Platform: "ios",
		IsActive: false,
	}
	refreshed := *existingDevice
	refreshed.FCMToken = "new-fcm-token"
	refreshed.IsActive = true

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, "u1").Return([]*entity.Device{existingDevice}, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, "d1", "new-fcm-token").Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "d1").Return(&refreshed, nil)

	device, err := fx.service.RegisterDevice(ctx, "u1", &usecase.DeviceRegistration{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
	assert.True(t, device.IsActive)
	fx.deviceRepo.AssertNotCalled(t, "CreateDevice", mock.Anything, mock.Anything)
}

func TestDeviceService_RegisterDevice_Duplicate(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, "u1").Return(nil, nil)
	fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).Return(repository.ErrDuplicateDevice)

	_, err := fx.service.RegisterDevice(ctx, "u1", &usecase.DeviceRegistration{DeviceID: "device-123", FCMToken: "t"})

	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, "u1").Return(nil, errors.New("database error"))

	_, err := fx.service.RegisterDevice(ctx, "u1", &usecase.DeviceRegistration{DeviceID: "device-123"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find devices by user")
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(fx deviceServiceFixtures)
		wantErr *domainerrors.BaseError
	}{
		{
			name: "success",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "d1").Return(&entity.Device{ID: "d1", UserID: "u1"}, nil)
				fx.deviceRepo.EXPECT().UpdateFCMToken(mock.Anything, "d1", "fresh").Return(nil)
			},
		},
		{
			name: "not found",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "d1").Return(nil, repository.ErrDeviceNotFound)
			},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name: "owned by another user",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, "d1").Return(&entity.Device{ID: "d1", UserID: "u2"}, nil)
			},
			wantErr: domainerrors.ErrDeviceOwnershipViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			tt.setup(fx)

			err := fx.service.UpdateFCMToken(context.Background(), "u1", "d1", "fresh")

			if tt.wantErr != nil {
				requireAppError(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	devices := []*entity.Device{{ID: "d1", UserID: "u1", IsActive: true}}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "u1").Return(devices, nil)

	got, err := fx.service.GetUserDevices(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, devices, got)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "d1").Return(&entity.Device{ID: "d1", UserID: "u1"}, nil)
		fx.deviceRepo.EXPECT().DeactivateDevice(ctx, "d1").Return(nil)

		require.NoError(t, fx.service.DeactivateDevice(ctx, "u1", "d1"))
	})

	t.Run("unauthorized", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "d1").Return(&entity.Device{ID: "d1", UserID: "u2"}, nil)

		err := fx.service.DeactivateDevice(ctx, "u1", "d1")

		requireAppError(t, err, domainerrors.ErrDeviceOwnershipViolation)
		fx.deviceRepo.AssertNotCalled(t, "DeactivateDevice", mock.Anything, mock.Anything)
	})

	t.Run("repository failure", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "d1").Return(&entity.Device{ID: "d1", UserID: "u1"}, nil)
		fx.deviceRepo.EXPECT().DeactivateDevice(ctx, "d1").Return(errors.New("write conflict"))

		err := fx.service.DeactivateDevice(ctx, "u1", "d1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to deactivate device")
	})
}
