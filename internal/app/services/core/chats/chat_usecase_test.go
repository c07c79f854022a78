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
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeConversationRepo struct {
	conversations map[string]*models.Conversation
	nextID        int
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{conversations: make(map[string]*models.Conversation)}
}

func (r *fakeConversationRepo) CreateConversation(ctx context.Context, conversation *models.Conversation) (string, error) {
	r.nextID++
	id := fmt.Sprintf("conv-%d", r.nextID)
	stored := *conversation
	stored.ID = id
	r.conversations[id] = &stored
	return id, nil
}

func (r *fakeConversationRepo) FindByID(ctx context.Context, conversationID string) (*models.Conversation, error) {
	conversation, ok := r.conversations[conversationID]
	if !ok {
		return nil, nil
	}
	copied := *conversation
	return &copied, nil
}

func (r *fakeConversationRepo) FindByParticipants(ctx context.Context, userA, userB string) (*models.Conversation, error) {
	for _, conversation := range r.conversations {
		if conversation.HasParticipant(userA) && conversation.HasParticipant(userB) {
			copied := *conversation
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeConversationRepo) FindByParticipant(ctx context.Context, userID string) ([]models.Conversation, error) {
	var result []models.Conversation
	for _, conversation := range r.conversations {
		if conversation.HasParticipant(userID) {
			result = append(result, *conversation)
		}
	}
	return result, nil
}

func (r *fakeConversationRepo) UpdateConversation(ctx context.Context, conversation *models.Conversation) error {
	stored := *conversation
	r.conversations[conversation.ID] = &stored
	return nil
}

type fakeMessageRepo struct {
	messages []models.ChatMessage
	nextID   int
}

func (r *fakeMessageRepo) CreateMessage(ctx context.Context, message *models.ChatMessage) (string, error) {
	r.nextID++
	id := fmt.Sprintf("msg-%d", r.nextID)
	stored := *message
	stored.ID = id
	r.messages = append(r.messages, stored)
	return id, nil
}

func (r *fakeMessageRepo) FindByConversation(ctx context.Context, conversationID string, page, pageSize int) ([]models.ChatMessage, int, error) {
	var result []models.ChatMessage
	for _, message := range r.messages {
		if message.ConversationID == conversationID {
			result = append(result, message)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, len(result), nil
}

func (r *fakeMessageRepo) MarkRead(ctx context.Context, conversationID, readerID string) error {
	for i := range r.messages {
		if r.messages[i].ConversationID == conversationID && r.messages[i].ReceiverID == readerID {
			r.messages[i].IsRead = true
		}
	}
	return nil
}

type fakeRelay struct {
	published   []*responses.ChatEvent
	subscribers []chan responses.ChatEvent
}

func (r *fakeRelay) Publish(ctx context.Context, conversationID string, event *responses.ChatEvent) error {
	r.published = append(r.published, event)
	return nil
}

func (r *fakeRelay) Subscribe(ctx context.Context, conversationID string) (<-chan responses.ChatEvent, func(), error) {
	events := make(chan responses.ChatEvent, 8)
	r.subscribers = append(r.subscribers, events)
	return events, func() { close(events) }, nil
}

func (r *fakeRelay) feed(event responses.ChatEvent) {
	for _, subscriber := range r.subscribers {
		subscriber <- event
	}
}

type chatFixture struct {
	usecase       contracts.ChatUsecase
	conversations *fakeConversationRepo
	messages      *fakeMessageRepo
	relay         *fakeRelay
}

func setupChatUsecase() *chatFixture {
	fixture := &chatFixture{
		conversations: newFakeConversationRepo(),
		messages:      &fakeMessageRepo{},
		relay:         &fakeRelay{},
	}
	userRepo := &fakeChatUserRepo{users: map[string]*models.User{
		"patient-1": {ID: "patient-1", Name: "Rohan Mehta", Role: constvars.RolePatient},
		"doctor-1":  {ID: "doctor-1", Name: "Dr. Asha Rao", Role: constvars.RoleDoctor},
	}}
	fixture.usecase = NewChatUsecase(fixture.conversations, fixture.messages, userRepo, fixture.relay, zap.NewNop())
	return fixture
}

type fakeChatUserRepo struct {
	users map[string]*models.User
}

func (r *fakeChatUserRepo) CreateUser(ctx context.Context, user *models.User) (string, error) {
	return user.ID, nil
}

func (r *fakeChatUserRepo) FindByID(ctx context.Context, userID string) (*models.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeChatUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (r *fakeChatUserRepo) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	return nil, nil
}

func (r *fakeChatUserRepo) UpdateUser(ctx context.Context, user *models.User) error { return nil }

func (r *fakeChatUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

func chatSession(userID string) *models.Session {
	return &models.Session{SessionID: "sess-" + userID, UserID: userID, Role: constvars.RolePatient}
}

func devMessage(t *testing.T, err error) string {
	t.Helper()
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok, "expected *exceptions.CustomError, got %T: %v", err, err)
	return customErr.DevMessage
}

func TestCreateOrGetConversation(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates New Conversation", func(t *testing.T) {
		fixture := setupChatUsecase()

		result, err := fixture.usecase.CreateOrGetConversation(ctx, chatSession("patient-1"), &requests.CreateConversation{ParticipantID: "doctor-1"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"patient-1", "doctor-1"}, result.Participants)
		assert.Zero(t, result.UnreadCount)
	})

	t.Run("Same Pair Reuses Conversation", func(t *testing.T) {
		fixture := setupChatUsecase()

		first, err := fixture.usecase.CreateOrGetConversation(ctx, chatSession("patient-1"), &requests.CreateConversation{ParticipantID: "doctor-1"})
		require.NoError(t, err)

		// The other side asks for the same pair.
		second, err := fixture.usecase.CreateOrGetConversation(ctx, chatSession("doctor-1"), &requests.CreateConversation{ParticipantID: "patient-1"})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Len(t, fixture.conversations.conversations, 1)
	})

	t.Run("Chat With Self Rejected", func(t *testing.T) {
		fixture := setupChatUsecase()

		_, err := fixture.usecase.CreateOrGetConversation(ctx, chatSession("patient-1"), &requests.CreateConversation{ParticipantID: "patient-1"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevChatWithSelf, devMessage(t, err))
	})

	t.Run("Unknown Participant", func(t *testing.T) {
		fixture := setupChatUsecase()

		_, err := fixture.usecase.CreateOrGetConversation(ctx, chatSession("patient-1"), &requests.CreateConversation{ParticipantID: "ghost"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevUserNotFound, devMessage(t, err))
	})
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	open := func(t *testing.T, fixture *chatFixture) string {
		t.Helper()
		conversation, err := fixture.usecase.CreateOrGetConversation(ctx, chatSession("patient-1"), &requests.CreateConversation{ParticipantID: "doctor-1"})
		require.NoError(t, err)
		return conversation.ID
	}

	t.Run("Persists Publishes And Bumps Unread", func(t *testing.T) {
		fixture := setupChatUsecase()
		conversationID := open(t, fixture)

		result, err := fixture.usecase.SendMessage(ctx, chatSession("patient-1"), conversationID, &requests.SendMessage{Message: "hello doctor"})
		require.NoError(t, err)
		assert.Equal(t, "patient-1", result.SenderID)
		assert.Equal(t, "doctor-1", result.ReceiverID)
		assert.Equal(t, constvars.MessageTypeText, result.MessageType, "type defaults to text")

		require.Len(t, fixture.relay.published, 1)
		assert.Equal(t, constvars.ChatEventMessage, fixture.relay.published[0].Event)

		stored := fixture.conversations.conversations[conversationID]
		assert.Equal(t, 1, stored.UnreadCounters["doctor-1"], "receiver unread counter bumps")
		assert.Equal(t, 0, stored.UnreadCounters["patient-1"])
		assert.Equal(t, "hello doctor", stored.LastMessage)
	})

	t.Run("Non-Participant Rejected", func(t *testing.T) {
		fixture := setupChatUsecase()
		conversationID := open(t, fixture)

		_, err := fixture.usecase.SendMessage(ctx, chatSession("stranger"), conversationID, &requests.SendMessage{Message: "let me in"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevNotConversationParty, devMessage(t, err))
	})

	t.Run("Unknown Conversation", func(t *testing.T) {
		fixture := setupChatUsecase()

		_, err := fixture.usecase.SendMessage(ctx, chatSession("patient-1"), "missing", &requests.SendMessage{Message: "anyone?"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevConversationNotFound, devMessage(t, err))
	})

	t.Run("Messages Keep Insertion Order", func(t *testing.T) {
		fixture := setupChatUsecase()
		conversationID := open(t, fixture)

		for i := 1; i <= 3; i++ {
			_, err := fixture.usecase.SendMessage(ctx, chatSession("patient-1"), conversationID, &requests.SendMessage{Message: fmt.Sprintf("message %d", i)})
			require.NoError(t, err)
		}

		messages, total, err := fixture.usecase.GetMessages(ctx, chatSession("doctor-1"), conversationID, 1, 50)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, messages, 3)
		assert.Equal(t, "message 1", messages[0].Message)
		assert.Equal(t, "message 3", messages[2].Message)
	})
}

func TestMarkConversationRead(t *testing.T) {
	ctx := context.Background()
	fixture := setupChatUsecase()

	conversation, err := fixture.usecase.CreateOrGetConversation(ctx, chatSession("patient-1"), &requests.CreateConversation{ParticipantID: "doctor-1"})
	require.NoError(t, err)

	_, err = fixture.usecase.SendMessage(ctx, chatSession("patient-1"), conversation.ID, &requests.SendMessage{Message: "are you there?"})
	require.NoError(t, err)
	require.Equal(t, 1, fixture.conversations.conversations[conversation.ID].UnreadCounters["doctor-1"])

	err = fixture.usecase.MarkConversationRead(ctx, chatSession("doctor-1"), conversation.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, fixture.conversations.conversations[conversation.ID].UnreadCounters["doctor-1"])
	assert.True(t, fixture.messages.messages[0].IsRead)
}

func TestSendTypingSignal(t *testing.T) {
	ctx := context.Background()
	fixture := setupChatUsecase()

	conversation, err := fixture.usecase.CreateOrGetConversation(ctx, chatSession("patient-1"), &requests.CreateConversation{ParticipantID: "doctor-1"})
	require.NoError(t, err)

	t.Run("Typing", func(t *testing.T) {
		err := fixture.usecase.SendTypingSignal(ctx, chatSession("patient-1"), conversation.ID, true)
		require.NoError(t, err)
		require.NotEmpty(t, fixture.relay.published)
		assert.Equal(t, constvars.ChatEventTyping, fixture.relay.published[len(fixture.relay.published)-1].Event)
	})

	t.Run("Stop Typing", func(t *testing.T) {
		err := fixture.usecase.SendTypingSignal(ctx, chatSession("patient-1"), conversation.ID, false)
		require.NoError(t, err)
		assert.Equal(t, constvars.ChatEventStopTyping, fixture.relay.published[len(fixture.relay.published)-1].Event)
	})

	t.Run("Non-Participant Rejected", func(t *testing.T) {
		err := fixture.usecase.SendTypingSignal(ctx, chatSession("stranger"), conversation.ID, true)
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevNotConversationParty, devMessage(t, err))
	})
}

func TestSubscribeConversation(t *testing.T) {
	ctx := context.Background()
	fixture := setupChatUsecase()

	conversation, err := fixture.usecase.CreateOrGetConversation(ctx, chatSession("patient-1"), &requests.CreateConversation{ParticipantID: "doctor-1"})
	require.NoError(t, err)

	t.Run("Participant Subscribes", func(t *testing.T) {
		events, stop, err := fixture.usecase.SubscribeConversation(ctx, chatSession("doctor-1"), conversation.ID)
		require.NoError(t, err)
		require.NotNil(t, events)
		stop()
	})

	t.Run("Non-Participant Rejected", func(t *testing.T) {
		_, _, err := fixture.usecase.SubscribeConversation(ctx, chatSession("stranger"), conversation.ID)
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevNotConversationParty, devMessage(t, err))
	})

	t.Run("Own Events Not Echoed Back", func(t *testing.T) {
		fixture := setupChatUsecase()
		conversation, err := fixture.usecase.CreateOrGetConversation(ctx, chatSession("patient-1"), &requests.CreateConversation{ParticipantID: "doctor-1"})
		require.NoError(t, err)

		events, stop, err := fixture.usecase.SubscribeConversation(ctx, chatSession("doctor-1"), conversation.ID)
		require.NoError(t, err)
		defer stop()

		fixture.relay.feed(responses.ChatEvent{Event: constvars.ChatEventTyping, ConversationID: conversation.ID, SenderID: "doctor-1"})
		fixture.relay.feed(responses.ChatEvent{Event: constvars.ChatEventMessage, ConversationID: conversation.ID, SenderID: "patient-1"})

		select {
		case event := <-events:
			assert.Equal(t, constvars.ChatEventMessage, event.Event)
			assert.Equal(t, "patient-1", event.SenderID)
		case <-time.After(time.Second):
			t.Fatal("expected the peer event to reach the subscriber")
		}
	})
}