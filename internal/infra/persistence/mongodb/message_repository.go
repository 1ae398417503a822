package mongodb

import (
	"context"

	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"
	"boral/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	coll *mongo.Collection
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *mongo.Database) repository.MessageRepository {
	return &messageRepository{
		coll: db.Collection(collMessages),
	}
}

// Create persists a new message.
func (repo *messageRepository) Create(ctx context.Context, msg *entity.Message) error {
	if _, err := repo.coll.InsertOne(ctx, fromMessageDomain(msg)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	return nil
}

// ListThread retrieves messages exchanged between userA and userB, oldest first.
func (repo *messageRepository) ListThread(ctx context.Context, userA, userB string, limit int) ([]*entity.Message, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "sender_id", Value: userA}, {Key: "receiver_id", Value: userB}},
		bson.D{{Key: "sender_id", Value: userB}, {Key: "receiver_id", Value: userA}},
	}}}
	sort := bson.D{{Key: "created_at", Value: 1}}

	messageModels, err := findAll[model.MessageModel](ctx, repo.coll, filter, findOptions(limit, sort), "failed to list message thread")
	if err != nil {
		return nil, err
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// MarkRead flags every unread message from senderID to receiverID as read.
func (repo *messageRepository) MarkRead(ctx context.Context, senderID, receiverID string) (int64, error) {
	filter := bson.D{
		{Key: "sender_id", Value: senderID},
		{Key: "receiver_id", Value: receiverID},
		{Key: "is_read", Value: false},
	}

	result, err := repo.coll.UpdateMany(ctx, filter, bson.D{{Key: "$set", Value: bson.D{{Key: "is_read", Value: true}}}})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to mark messages read")
	}

	return result.ModifiedCount, nil
}

// ListConversations groups the user's messages by counterpart, keeping the newest message of each.
func (repo *messageRepository) ListConversations(ctx context.Context, userID string) ([]*entity.ConversationSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "sender_id", Value: userID}},
			bson.D{{Key: "receiver_id", Value: userID}},
		}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$eq", Value: bson.A{"$sender_id", userID}}},
				"$receiver_id",
				"$sender_id",
			}}}},
			{Key: "last_message", Value: bson.D{{Key: "$first", Value: "$$ROOT"}}},
			{Key: "unread_count", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$and", Value: bson.A{
					bson.D{{Key: "$eq", Value: bson.A{"$receiver_id", userID}}},
					bson.D{{Key: "$eq", Value: bson.A{"$is_read", false}}},
				}}},
				1,
				0,
			}}}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "last_message.created_at", Value: -1}}}},
	}

	rows, err := aggregateAll[model.ConversationRow](ctx, repo.coll, pipeline, "failed to list conversations")
	if err != nil {
		return nil, err
	}

	summaries := make([]*entity.ConversationSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, &entity.ConversationSummary{
			CounterpartID: rows[i].CounterpartID,
			LastMessage:   toMessageDomain(&rows[i].LastMessage),
			UnreadCount:   rows[i].UnreadCount,
		})
	}

	return summaries, nil
}

// --- Mapper Functions ---

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:         data.ID,
		SenderID:   data.SenderID,
		ReceiverID: data.ReceiverID,
		Content:    data.Content,
		IsRead:     data.IsRead,
		CreatedAt:  model.ParseTimeOrZero(data.CreatedAt),
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:         data.ID,
		SenderID:   data.SenderID,
		ReceiverID: data.ReceiverID,
		Content:    data.Content,
		IsRead:     data.IsRead,
		CreatedAt:  model.FormatTime(data.CreatedAt),
	}
}
