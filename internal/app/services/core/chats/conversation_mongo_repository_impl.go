package chats

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ConversationMongoRepository struct {
	Collection *mongo.Collection
}

func NewConversationMongoRepository(db *mongo.Client, dbName string) contracts.ConversationRepository {
	return &ConversationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionConversations),
	}
}

func (r *ConversationMongoRepository) CreateConversation(ctx context.Context, conversationModel *models.Conversation) (string, error) {
	result, err := r.Collection.InsertOne(ctx, conversationModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ConversationMongoRepository) FindByID(ctx context.Context, conversationID string) (*models.Conversation, error) {
	objectID, err := primitive.ObjectIDFromHex(conversationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var conversation models.Conversation
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&conversation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &conversation, nil
}

// FindByParticipants matches the unordered pair, so (a, b) and (b, a)
// resolve to the same conversation.
func (r *ConversationMongoRepository) FindByParticipants(ctx context.Context, userA, userB string) (*models.Conversation, error) {
	filter := bson.M{
		"participants": bson.M{"$all": bson.A{userA, userB}},
	}

	var conversation models.Conversation
	err := r.Collection.FindOne(ctx, filter).Decode(&conversation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &conversation, nil
}

func (r *ConversationMongoRepository) FindByParticipant(ctx context.Context, userID string) ([]models.Conversation, error) {
	filter := bson.M{"participants": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "lastMessageAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var conversations []models.Conversation
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return conversations, nil
}

func (r *ConversationMongoRepository) UpdateConversation(ctx context.Context, conversationModel *models.Conversation) error {
	objectID, err := primitive.ObjectIDFromHex(conversationModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"lastMessage":    conversationModel.LastMessage,
		"lastMessageAt":  conversationModel.LastMessageAt,
		"unreadCounters": conversationModel.UnreadCounters,
		"updatedAt":      conversationModel.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
