package impl

import (
	"context"
	"fmt"
	"testing"

	"boral/internal/domain/entity"
	"boral/internal/domain/service"
	mockRepo "boral/internal/mocks/repository"
	mockService "boral/internal/mocks/service"
	"boral/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service         usecase.NotificationUsecase
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockService.MockNotificationService
	recorder        *mockService.MockPushRecorder
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockService.NewMockNotificationService(t)
	recorder := mockService.NewMockPushRecorder(t)

	svc := NewNotificationService(NotificationServiceParams{
		DeviceRepo:      deviceRepo,
		NotificationSvc: notificationSvc,
		Recorder:        recorder,
		Logger:          newDiscardLogger(),
	})

	return notificationServiceFixtures{
		service:         svc,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		recorder:        recorder,
	}
}

func newPushMessage() *usecase.PushMessage {
	return &usecase.PushMessage{
		Event: usecase.PushEventNewMessage,
		Title: "New message",
		Body:  "hello",
		Data:  map[string]string{"message_id": "m1"},
	}
}

func devicesWithTokens(n int) []*entity.Device {
	devices := make([]*entity.Device, 0, n)
	for i := range n {
		devices = append(devices, &entity.Device{ID: fmt.Sprintf("d%d", i), FCMToken: fmt.Sprintf("token-%d", i), IsActive: true})
	}

	return devices
}

func TestNotificationService_NotifyUser_Success(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "bob").Return(devicesWithTokens(2), nil)
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, []string{"token-0", "token-1"}, &service.Notification{
			Title: "New message",
			Body:  "hello",
			Data:  map[string]string{"message_id": "m1", "event": usecase.PushEventNewMessage},
		}).
		Return(&service.MulticastResult{SuccessCount: 2}, nil)
	fx.recorder.EXPECT().AddPush(usecase.PushEventNewMessage, 2, 0).Return()

	result, err := fx.service.NotifyUser(ctx, "bob", newPushMessage())

	require.NoError(t, err)
	assert.Equal(t, &usecase.PushResult{Sent: 2}, result)
}

func TestNotificationService_NotifyUser_NoDevices(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "bob").Return(nil, nil)

	result, err := fx.service.NotifyUser(ctx, "bob", newPushMessage())

	require.NoError(t, err)
	assert.Equal(t, &usecase.PushResult{}, result)
	fx.notificationSvc.AssertNotCalled(t, "SendMulticast", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationService_NotifyUser_DeactivatesInvalidTokens(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "bob").Return(devicesWithTokens(3), nil)
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, mock.Anything, mock.Anything).
		Return(&service.MulticastResult{SuccessCount: 1, FailureCount: 2, InvalidTokens: []string{"token-1", "token-2"}}, nil)
	fx.recorder.EXPECT().AddPush(usecase.PushEventNewMessage, 1, 2).Return()
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"token-1", "token-2"}).Return(int64(2), nil)

	result, err := fx.service.NotifyUser(ctx, "bob", newPushMessage())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, int64(2), result.Deactivated)
}

func TestNotificationService_NotifyUser_BatchesAndCountsFailedBatch(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "bob").Return(devicesWithTokens(firebaseBatchSize+10), nil)
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == firebaseBatchSize }), mock.Anything).
		Return(&service.MulticastResult{SuccessCount: firebaseBatchSize}, nil).Once()
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 10 }), mock.Anything).
		Return(nil, errors.New("quota exceeded")).Once()
	fx.recorder.EXPECT().AddPush(usecase.PushEventNewMessage, firebaseBatchSize, 10).Return()

	result, err := fx.service.NotifyUser(ctx, "bob", newPushMessage())

	require.NoError(t, err)
	assert.Equal(t, firebaseBatchSize, result.Sent)
	assert.Equal(t, 10, result.Failed)
}

func TestNotificationService_NotifyUser_FindDevicesError(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "bob").Return(nil, errors.New("server selection timeout"))

	_, err := fx.service.NotifyUser(ctx, "bob", newPushMessage())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch devices")
}
