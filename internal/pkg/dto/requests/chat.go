package requests

type CreateConversation struct {
	ParticipantID string `json:"participant_id" validate:"required"`
}

type SendMessage struct {
	Message     string `json:"message" validate:"required_without=FileURL,omitempty,max=5000"`
	MessageType string `json:"message_type,omitempty" validate:"omitempty,oneof=text image file prescription report"`
	FileURL     string `json:"file_url,omitempty" validate:"omitempty,url"`
}

type TypingSignal struct {
	Typing bool `json:"typing"`
}
