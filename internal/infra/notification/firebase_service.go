// Package notification delivers push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"boral/config"
	"boral/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit per multicast request.
const maxMulticastTokens = 500

// Params defines the parameters required for the notification service
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New returns the Firebase sender when configured, otherwise a sender that only logs.
func New(params Params) (service.NotificationService, error) {
	if params.Config.Firebase == nil || params.Config.Firebase.CredentialsPath == "" {
		params.Logger.Info("Firebase is not configured, push notifications are disabled")

		return &noopService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, params.Config.Firebase)
}

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendMulticast sends n to every token through FCM and collects the tokens FCM rejected for good.
func (s *firebaseService) SendMulticast(ctx context.Context, tokens []string, n *service.Notification) (*service.MulticastResult, error) {
	if len(tokens) == 0 {
		return &service.MulticastResult{}, nil
	}

	if len(tokens) > service.MaxMulticastTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxMulticastTokens)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: n.Data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.MulticastResult{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
	}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		}
	}

	return result, nil
}

// noopService drops notifications when Firebase is disabled.
type noopService struct {
	logger *slog.Logger
}

func (s *noopService) SendMulticast(ctx context.Context, tokens []string, n *service.Notification) (*service.MulticastResult, error) {
	s.logger.DebugContext(ctx, "Push disabled, dropping notification",
		slog.String("title", n.Title),
		slog.Int("tokens", len(tokens)),
	)

	return &service.MulticastResult{}, nil
}
