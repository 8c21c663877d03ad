package models

// ChatMessage is one logged assistant exchange. Messages are
// append-only and never updated after creation.
type ChatMessage struct {
	Meta
	UserID    string `json:"userId,omitempty"` // empty for anonymous visitors
	Message   string `json:"message"`
	Response  string `json:"response,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Language  string `json:"language,omitempty"`
}
