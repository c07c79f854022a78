package responses

type Conversation struct {
	ID            string   `json:"id"`
	Participants  []string `json:"participants"`
	LastMessage   string   `json:"last_message,omitempty"`
	LastMessageAt string   `json:"last_message_at,omitempty"`
	UnreadCount   int      `json:"unread_count"`
}

type ChatMessage struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversation_id"`
	SenderID       string `json:"sender_id"`
	ReceiverID     string `json:"receiver_id"`
	Message        string `json:"message,omitempty"`
	MessageType    string `json:"message_type"`
	FileURL        string `json:"file_url,omitempty"`
	IsRead         bool   `json:"is_read"`
	ReadAt         string `json:"read_at,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// ChatEvent is the payload fanned out on the conversation channel.
type ChatEvent struct {
	Event          string       `json:"event"`
	ConversationID string       `json:"conversation_id"`
	SenderID       string       `json:"sender_id"`
	Message        *ChatMessage `json:"message,omitempty"`
}
