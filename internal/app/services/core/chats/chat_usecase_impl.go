package chats

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type chatUsecase struct {
	ConversationRepository contracts.ConversationRepository
	ChatMessageRepository  contracts.ChatMessageRepository
	UserRepository         contracts.UserRepository
	Relay                  contracts.Relay
	Log                    *zap.Logger
}

func NewChatUsecase(
	conversationRepository contracts.ConversationRepository,
	chatMessageRepository contracts.ChatMessageRepository,
	userRepository contracts.UserRepository,
	relay contracts.Relay,
	logger *zap.Logger,
) contracts.ChatUsecase {
	return &chatUsecase{
		ConversationRepository: conversationRepository,
		ChatMessageRepository:  chatMessageRepository,
		UserRepository:         userRepository,
		Relay:                  relay,
		Log:                    logger,
	}
}

func (uc *chatUsecase) CreateOrGetConversation(ctx context.Context, session *models.Session, request *requests.CreateConversation) (*responses.Conversation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chatUsecase.CreateOrGetConversation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	if request.ParticipantID == session.UserID {
		return nil, exceptions.ErrChatWithSelf(nil)
	}

	peer, err := uc.UserRepository.FindByID(ctx, request.ParticipantID)
	if err != nil {
		return nil, err
	}
	if peer == nil {
		return nil, exceptions.ErrUserNotExist(fmt.Errorf("user %s not found", request.ParticipantID))
	}

	existing, err := uc.ConversationRepository.FindByParticipants(ctx, session.UserID, request.ParticipantID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return buildConversationResponse(existing, session.UserID), nil
	}

	now := time.Now()
	conversation := &models.Conversation{
		Participants: []string{session.UserID, request.ParticipantID},
		UnreadCounters: map[string]int{
			session.UserID:        0,
			request.ParticipantID: 0,
		},
	}
	conversation.CreatedAt = now
	conversation.UpdatedAt = now

	conversationID, err := uc.ConversationRepository.CreateConversation(ctx, conversation)
	if err != nil {
		return nil, err
	}
	conversation.ID = conversationID

	return buildConversationResponse(conversation, session.UserID), nil
}

func (uc *chatUsecase) ListConversations(ctx context.Context, session *models.Session) ([]responses.Conversation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chatUsecase.ListConversations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	conversations, err := uc.ConversationRepository.FindByParticipant(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Conversation, 0, len(conversations))
	for i := range conversations {
		result = append(result, *buildConversationResponse(&conversations[i], session.UserID))
	}
	return result, nil
}

func (uc *chatUsecase) SendMessage(ctx context.Context, session *models.Session, conversationID string, request *requests.SendMessage) (*responses.ChatMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chatUsecase.SendMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConversationIDKey, conversationID),
	)

	conversation, err := uc.findParticipantConversation(ctx, session, conversationID)
	if err != nil {
		return nil, err
	}

	messageType := request.MessageType
	if messageType == "" {
		messageType = constvars.MessageTypeText
	}

	now := time.Now()
	message := &models.ChatMessage{
		ConversationID: conversationID,
		SenderID:       session.UserID,
		ReceiverID:     conversation.OtherParticipant(session.UserID),
		Message:        request.Message,
		MessageType:    messageType,
		AttachmentURL:  request.FileURL,
	}
	message.CreatedAt = now
	message.UpdatedAt = now

	messageID, err := uc.ChatMessageRepository.CreateMessage(ctx, message)
	if err != nil {
		return nil, err
	}
	message.ID = messageID

	// Bump the conversation summary and the receiver's unread counter.
	summary := request.Message
	if summary == "" {
		summary = messageType
	}
	if conversation.UnreadCounters == nil {
		conversation.UnreadCounters = map[string]int{}
	}
	conversation.LastMessage = summary
	conversation.LastMessageAt = &now
	conversation.UnreadCounters[message.ReceiverID]++
	conversation.UpdatedAt = now
	if err := uc.ConversationRepository.UpdateConversation(ctx, conversation); err != nil {
		return nil, err
	}

	messageDTO := buildChatMessageResponse(message)
	event := &responses.ChatEvent{
		Event:          constvars.ChatEventMessage,
		ConversationID: conversationID,
		SenderID:       session.UserID,
		Message:        messageDTO,
	}
	if err := uc.Relay.Publish(ctx, conversationID, event); err != nil {
		// Delivery is best effort; the message is already in the log.
		uc.Log.Warn("chatUsecase.SendMessage relay publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConversationIDKey, conversationID),
			zap.Error(err),
		)
	}

	return messageDTO, nil
}

func (uc *chatUsecase) GetMessages(ctx context.Context, session *models.Session, conversationID string, page, pageSize int) ([]responses.ChatMessage, int, error) {
	if _, err := uc.findParticipantConversation(ctx, session, conversationID); err != nil {
		return nil, 0, err
	}

	messages, total, err := uc.ChatMessageRepository.FindByConversation(ctx, conversationID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.ChatMessage, 0, len(messages))
	for i := range messages {
		result = append(result, *buildChatMessageResponse(&messages[i]))
	}
	return result, total, nil
}

func (uc *chatUsecase) MarkConversationRead(ctx context.Context, session *models.Session, conversationID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chatUsecase.MarkConversationRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConversationIDKey, conversationID),
	)

	conversation, err := uc.findParticipantConversation(ctx, session, conversationID)
	if err != nil {
		return err
	}

	if err := uc.ChatMessageRepository.MarkRead(ctx, conversationID, session.UserID); err != nil {
		return err
	}

	if conversation.UnreadCounters == nil {
		conversation.UnreadCounters = map[string]int{}
	}
	conversation.UnreadCounters[session.UserID] = 0
	conversation.UpdatedAt = time.Now()
	return uc.ConversationRepository.UpdateConversation(ctx, conversation)
}

// SendTypingSignal relays an ephemeral typing indicator. Nothing is
// persisted; absent subscribers simply never see it.
func (uc *chatUsecase) SendTypingSignal(ctx context.Context, session *models.Session, conversationID string, typing bool) error {
	if _, err := uc.findParticipantConversation(ctx, session, conversationID); err != nil {
		return err
	}

	eventName := constvars.ChatEventTyping
	if !typing {
		eventName = constvars.ChatEventStopTyping
	}
	event := &responses.ChatEvent{
		Event:          eventName,
		ConversationID: conversationID,
		SenderID:       session.UserID,
	}
	return uc.Relay.Publish(ctx, conversationID, event)
}

func (uc *chatUsecase) SubscribeConversation(ctx context.Context, session *models.Session, conversationID string) (<-chan responses.ChatEvent, func(), error) {
	if _, err := uc.findParticipantConversation(ctx, session, conversationID); err != nil {
		return nil, nil, err
	}

	events, stop, err := uc.Relay.Subscribe(ctx, conversationID)
	if err != nil {
		return nil, nil, err
	}

	// A subscriber never receives its own events back.
	filtered := make(chan responses.ChatEvent)
	go func() {
		defer close(filtered)
		for event := range events {
			if event.SenderID == session.UserID {
				continue
			}
			select {
			case filtered <- event:
			case <-ctx.Done():
				return
			}
		}
	}()
	return filtered, stop, nil
}

func (uc *chatUsecase) findParticipantConversation(ctx context.Context, session *models.Session, conversationID string) (*models.Conversation, error) {
	conversation, err := uc.ConversationRepository.FindByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, exceptions.ErrConversationNotExist(fmt.Errorf("conversation %s not found", conversationID))
	}
	if !conversation.HasParticipant(session.UserID) {
		return nil, exceptions.ErrNotConversationParticipant(nil)
	}
	return conversation, nil
}

func buildConversationResponse(conversation *models.Conversation, viewerID string) *responses.Conversation {
	dto := &responses.Conversation{
		ID:           conversation.ID,
		Participants: conversation.Participants,
		LastMessage:  conversation.LastMessage,
		UnreadCount:  conversation.UnreadCounters[viewerID],
	}
	if conversation.LastMessageAt != nil {
		dto.LastMessageAt = conversation.LastMessageAt.Format(time.RFC3339)
	}
	return dto
}

func buildChatMessageResponse(message *models.ChatMessage) *responses.ChatMessage {
	dto := &responses.ChatMessage{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		ReceiverID:     message.ReceiverID,
		Message:        message.Message,
		MessageType:    message.MessageType,
		FileURL:        message.AttachmentURL,
		IsRead:         message.IsRead,
	}
	if message.ReadAt != nil {
		dto.ReadAt = message.ReadAt.Format(time.RFC3339)
	}
	if !message.CreatedAt.IsZero() {
		dto.CreatedAt = message.CreatedAt.Format(time.RFC3339)
	}
	return dto
}
