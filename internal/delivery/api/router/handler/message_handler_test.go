package handler

import (
	"net/http"
	"testing"

	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	mockUsecase "boral/internal/mocks/usecase"
	"boral/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMessageHandler_Send(t *testing.T) {
	t.Run("sent", func(t *testing.T) {
		messageUC := mockUsecase.NewMockMessageUsecase(t)
		h := NewMessageHandler(MessageHandlerParams{MessageUC: messageUC})
		messageUC.EXPECT().
			Send(mock.Anything, "alice", &usecase.SendMessageInput{ReceiverID: "bob", Content: "hi"}).
			Return(&entity.Message{ID: "m1", SenderID: "alice", ReceiverID: "bob", Content: "hi"}, nil).
			Once()

		c, rec := newContext(http.MethodPost, "/api/messages", `{"receiver_id":"bob","content":"hi"}`, testUser("alice"))
		require.NoError(t, h.Send(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown receiver", func(t *testing.T) {
		messageUC := mockUsecase.NewMockMessageUsecase(t)
		h := NewMessageHandler(MessageHandlerParams{MessageUC: messageUC})
		messageUC.EXPECT().Send(mock.Anything, "alice", mock.Anything).
			Return(nil, domainerrors.ErrUserNotFound).
			Once()

		c, rec := newContext(http.MethodPost, "/api/messages", `{"receiver_id":"ghost","content":"hi"}`, testUser("alice"))
		require.NoError(t, h.Send(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty content", func(t *testing.T) {
		h := NewMessageHandler(MessageHandlerParams{MessageUC: mockUsecase.NewMockMessageUsecase(t)})

		c, rec := newContext(http.MethodPost, "/api/messages", `{"receiver_id":"bob"}`, testUser("alice"))
		require.NoError(t, h.Send(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "required", decodeEnvelope(t, rec).Error.Details["content"])
	})
}

func TestMessageHandler_Thread(t *testing.T) {
	messageUC := mockUsecase.NewMockMessageUsecase(t)
	h := NewMessageHandler(MessageHandlerParams{MessageUC: messageUC})
	messageUC.EXPECT().Thread(mock.Anything, "alice", "bob").
		Return([]*entity.Message{{ID: "m1"}, {ID: "m2"}}, nil).
		Once()

	c, rec := newContext(http.MethodGet, "/api/messages/bob", "", testUser("alice"))
	require.NoError(t, h.Thread(withParam(c, "user_id", "bob")))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out []*entity.Message
	decodeData(t, rec, &out)
	assert.Len(t, out, 2)
}
