package services

import (
	"smartkumbh-http-service/config"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/storage"
)

// InterfaceChatService defines the chat log service interface
type InterfaceChatService interface {
	GetAllMessages() []*models.ChatMessage
	AppendMessage(msg *models.ChatMessage) *models.ChatMessage
	Ask(question, userID, sessionID, language string) (*models.ChatMessage, error)
}

// ChatService provides the append-only assistant chat log and the
// question endpoint backed by the assistant service.
type ChatService struct {
	Store     *storage.Store
	Config    *config.Config
	Assistant InterfaceAssistantService
}

// NewChatService creates a new chat service
func NewChatService(store *storage.Store, cfg *config.Config, assistant InterfaceAssistantService) InterfaceChatService {
	return &ChatService{
		Store:     store,
		Config:    cfg,
		Assistant: assistant,
	}
}

// 1 GetAllMessages returns the full chat log
func (s *ChatService) GetAllMessages() []*models.ChatMessage {
	return s.Store.ChatMessages.List()
}

// 2 AppendMessage stores one exchange. Messages are never updated
// after creation.
func (s *ChatService) AppendMessage(msg *models.ChatMessage) *models.ChatMessage {
	if msg.Language == "" {
		msg.Language = "en"
	}
	return s.Store.ChatMessages.Create(msg)
}

// 3 Ask answers a free-text question through the assistant (external
// service when configured, templated fallback otherwise) and logs the
// exchange. An assistant failure degrades to the fallback answer; it
// never surfaces as a request error.
func (s *ChatService) Ask(question, userID, sessionID, language string) (*models.ChatMessage, error) {
	answer := s.Assistant.Answer(question, language)
	msg := &models.ChatMessage{
		UserID:    userID,
		Message:   question,
		Response:  answer,
		SessionID: sessionID,
		Language:  language,
	}
	return s.AppendMessage(msg), nil
}
