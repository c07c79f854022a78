package chats

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatMessageMongoRepository struct {
	Collection *mongo.Collection
}

func NewChatMessageMongoRepository(db *mongo.Client, dbName string) contracts.ChatMessageRepository {
	return &ChatMessageMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionChatMessages),
	}
}

func (r *ChatMessageMongoRepository) CreateMessage(ctx context.Context, messageModel *models.ChatMessage) (string, error) {
	result, err := r.Collection.InsertOne(ctx, messageModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindByConversation pages through the log in insertion order. The
// ObjectID sort is the insertion order; messages are never reordered.
func (r *ChatMessageMongoRepository) FindByConversation(ctx context.Context, conversationID string, page, pageSize int) ([]models.ChatMessage, int, error) {
	filter := bson.M{"conversationId": conversationID}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var messages []models.ChatMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return messages, int(total), nil
}

func (r *ChatMessageMongoRepository) MarkRead(ctx context.Context, conversationID, readerID string) error {
	now := time.Now()
	filter := bson.M{
		"conversationId": conversationID,
		"receiverId":     readerID,
		"isRead":         false,
	}
	update := bson.M{"$set": bson.M{
		"isRead": true,
		"readAt": now,
	}}

	_, err := r.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
