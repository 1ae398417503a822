package impl

import (
	"context"
	"log/slog"

	deliverycontext "boral/internal/delivery/context"
	"boral/internal/domain/repository"
	"boral/internal/domain/service"
	"boral/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const firebaseBatchSize = service.MaxMulticastTokens

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	recorder        service.PushRecorder
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Recorder        service.PushRecorder
	Logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		recorder:        params.Recorder,
		logger:          params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// NotifyUser sends msg to every active device of userID in batches.
// A failed batch is counted and skipped; tokens FCM rejects as invalid are deactivated.
func (s *notificationService) NotifyUser(ctx context.Context, userID string, msg *usecase.PushMessage) (*usecase.PushResult, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch devices")
	}

	result := &usecase.PushResult{}
	if len(devices) == 0 {
		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := make(map[string]string, len(msg.Data)+1)
	for k, v := range msg.Data {
		data[k] = v
	}
	data["event"] = msg.Event
	notification := &service.Notification{Title: msg.Title, Body: msg.Body, Data: data}

	var invalidTokens []string
	for start := 0; start < len(tokens); start += firebaseBatchSize {
		end := min(start+firebaseBatchSize, len(tokens))
		batch := tokens[start:end]

		sent, err := s.notificationSvc.SendMulticast(ctx, batch, notification)
		if err != nil {
			s.log(ctx).Warn("Push batch failed", slog.String("event", msg.Event), slog.Any("error", err))
			result.Failed += len(batch)

			continue
		}

		result.Sent += sent.SuccessCount
		result.Failed += sent.FailureCount
		invalidTokens = append(invalidTokens, sent.InvalidTokens...)
	}

	if s.recorder != nil {
		s.recorder.AddPush(msg.Event, result.Sent, result.Failed)
	}

	if len(invalidTokens) > 0 {
		deactivated, err := s.deviceRepo.DeactivateByTokens(ctx, invalidTokens)
		if err != nil {
			return result, errors.Wrap(err, "failed to deactivate invalid devices")
		}
		result.Deactivated = deactivated
	}

	s.log(ctx).Debug("Push delivered",
		slog.String("event", msg.Event),
		slog.String("userID", userID),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int64("deactivated", result.Deactivated),
	)

	return result, nil
}
