package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type ChatUsecase interface {
	CreateOrGetConversation(ctx context.Context, session *models.Session, request *requests.CreateConversation) (*responses.Conversation, error)
	ListConversations(ctx context.Context, session *models.Session) ([]responses.Conversation, error)
	SendMessage(ctx context.Context, session *models.Session, conversationID string, request *requests.SendMessage) (*responses.ChatMessage, error)
	GetMessages(ctx context.Context, session *models.Session, conversationID string, page, pageSize int) ([]responses.ChatMessage, int, error)
	MarkConversationRead(ctx context.Context, session *models.Session, conversationID string) error
	SendTypingSignal(ctx context.Context, session *models.Session, conversationID string, typing bool) error
	SubscribeConversation(ctx context.Context, session *models.Session, conversationID string) (<-chan responses.ChatEvent, func(), error)
}

type ConversationRepository interface {
	CreateConversation(ctx context.Context, conversationModel *models.Conversation) (conversationID string, err error)
	FindByID(ctx context.Context, conversationID string) (*models.Conversation, error)
	FindByParticipants(ctx context.Context, userA, userB string) (*models.Conversation, error)
	FindByParticipant(ctx context.Context, userID string) ([]models.Conversation, error)
	UpdateConversation(ctx context.Context, conversationModel *models.Conversation) error
}

type ChatMessageRepository interface {
	CreateMessage(ctx context.Context, messageModel *models.ChatMessage) (messageID string, err error)
	// FindByConversation returns messages in insertion order, oldest first.
	FindByConversation(ctx context.Context, conversationID string, page, pageSize int) ([]models.ChatMessage, int, error)
	MarkRead(ctx context.Context, conversationID, readerID string) error
}
