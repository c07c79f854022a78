package models

import "time"

// Conversation pairs exactly two accounts. The message log lives in a
// separate collection keyed by conversation id; this record only holds
// the last-message summary and per-participant unread counters.
type Conversation struct {
	ID             string         `bson:"_id,omitempty"`
	Participants   []string       `bson:"participants"`
	LastMessage    string         `bson:"lastMessage,omitempty"`
	LastMessageAt  *time.Time     `bson:"lastMessageAt,omitempty"`
	UnreadCounters map[string]int `bson:"unreadCounters,omitempty"`
	TimeModel      `bson:",inline"`
}

func (c *Conversation) HasParticipant(userID string) bool {
	for _, participant := range c.Participants {
		if participant == userID {
			return true
		}
	}
	return false
}

// OtherParticipant returns the peer of userID, or empty when userID is
// not part of the conversation.
func (c *Conversation) OtherParticipant(userID string) string {
	for _, participant := range c.Participants {
		if participant != userID {
			return participant
		}
	}
	return ""
}

// ChatMessage is one entry of the append-only, insertion-ordered log.
// Messages may be soft-edited or soft-deleted but never reordered.
type ChatMessage struct {
	ID             string     `bson:"_id,omitempty"`
	ConversationID string     `bson:"conversationId"`
	SenderID       string     `bson:"senderId"`
	ReceiverID     string     `bson:"receiverId"`
	Message        string     `bson:"message"`
	MessageType    string     `bson:"messageType"`
	AttachmentURL  string     `bson:"attachmentUrl,omitempty"`
	IsRead         bool       `bson:"isRead"`
	ReadAt         *time.Time `bson:"readAt,omitempty"`
	EditedAt       *time.Time `bson:"editedAt,omitempty"`
	TimeModel      `bson:",inline"`
}
