package routers

import (
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/app/services/core/chats"

	"github.com/go-chi/chi/v5"
)

func attachChatRoutes(router chi.Router, mw *middlewares.Middlewares, chatController *chats.ChatController) {
	router.Use(mw.Authenticate)

	router.Post("/", chatController.CreateOrGetConversation)
	router.Get("/", chatController.ListConversations)
	router.Get("/{conversationID}/messages", chatController.GetMessages)
	router.Post("/{conversationID}/messages", chatController.SendMessage)
	router.Put("/{conversationID}/read", chatController.MarkConversationRead)
	router.Post("/{conversationID}/typing", chatController.SendTypingSignal)
	router.Get("/{conversationID}/stream", chatController.StreamConversation)
}
