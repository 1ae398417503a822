package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "boral/internal/delivery/context"
	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"
	"boral/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pushPreviewLength caps the message excerpt carried in a push body.
const pushPreviewLength = 100

type messageService struct {
	messageRepo   repository.MessageRepository
	userRepo      repository.UserRepository
	notifications usecase.NotificationUsecase
	logger        *slog.Logger
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo   repository.MessageRepository
	UserRepo      repository.UserRepository
	Notifications usecase.NotificationUsecase
	Logger        *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo:   params.MessageRepo,
		userRepo:      params.UserRepo,
		notifications: params.Notifications,
		logger:        params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Conversations lists one entry per counterpart, newest conversation first.
// Counterparts whose account no longer exists are left out.
func (srv *messageService) Conversations(ctx context.Context, userID string) ([]*usecase.Conversation, error) {
	summaries, err := srv.messageRepo.ListConversations(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	if len(summaries) == 0 {
		return []*usecase.Conversation{}, nil
	}

	counterpartIDs := make([]string, 0, len(summaries))
	for _, summary := range summaries {
		counterpartIDs = append(counterpartIDs, summary.CounterpartID)
	}

	users, err := srv.userRepo.FindByIDs(ctx, counterpartIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load conversation counterparts")
	}

	usersByID := make(map[string]*entity.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	conversations := make([]*usecase.Conversation, 0, len(summaries))
	for _, summary := range summaries {
		user, ok := usersByID[summary.CounterpartID]
		if !ok {
			continue
		}
		conversations = append(conversations, &usecase.Conversation{
			User:        user,
			LastMessage: summary.LastMessage,
			UnreadCount: summary.UnreadCount,
		})
	}

	return conversations, nil
}

// Thread returns the whole exchange with counterpartID, then marks the messages received
// from counterpartID as read. The returned messages keep the read state they had before the call.
func (srv *messageService) Thread(ctx context.Context, userID, counterpartID string) ([]*entity.Message, error) {
	messages, err := srv.messageRepo.ListThread(ctx, userID, counterpartID, generalListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list message thread")
	}

	marked, err := srv.messageRepo.MarkRead(ctx, counterpartID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark messages read")
	}

	if marked > 0 {
		srv.log(ctx).Debug("Marked messages read", slog.String("userID", userID), slog.Int64("count", marked))
	}

	return messages, nil
}

// Send delivers a message to an existing user and pushes a notification to the receiver.
func (srv *messageService) Send(ctx context.Context, senderID string, input *usecase.SendMessageInput) (*entity.Message, error) {
	if _, err := srv.userRepo.FindByID(ctx, input.ReceiverID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("receiver " + input.ReceiverID + " not found")
		}

		return nil, errors.Wrap(err, "failed to find receiver")
	}

	msg := &entity.Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
		CreatedAt:  time.Now().UTC(),
	}

	if err := srv.messageRepo.Create(ctx, msg); err != nil {
		return nil, errors.Wrap(err, "failed to create message")
	}

	srv.notifyReceiver(ctx, msg)

	return msg, nil
}

// notifyReceiver is best-effort; a push failure never fails the send.
func (srv *messageService) notifyReceiver(ctx context.Context, msg *entity.Message) {
	push := &usecase.PushMessage{
		Event: usecase.PushEventNewMessage,
		Title: "New message",
		Body:  preview(msg.Content, pushPreviewLength),
		Data: map[string]string{
			"message_id": msg.ID,
			"sender_id":  msg.SenderID,
		},
	}

	if _, err := srv.notifications.NotifyUser(ctx, msg.ReceiverID, push); err != nil {
		srv.log(ctx).Warn("Failed to push new message notification",
			slog.String("messageID", msg.ID),
			slog.Any("error", err),
		)
	}
}

// preview truncates s to at most n runes.
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n]) + "…"
}
