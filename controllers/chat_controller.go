package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartkumbh-http-service/internal/error/code"
	"smartkumbh-http-service/internal/error/response"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/services"
	"smartkumbh-http-service/services/container"
)

// ChatController handles the assistant chat log and ask endpoint
type ChatController struct {
	BaseControllerImpl
}

// NewChatController creates a new chat controller
func NewChatController(ctx *gin.Context, container *container.ServiceContainer) *ChatController {
	return &ChatController{
		BaseControllerImpl: BaseControllerImpl{
			Container: container,
			Ctx:       ctx,
		},
	}
}

// CreateChatMessageRequest is the chat log append payload
type CreateChatMessageRequest struct {
	UserID    string `json:"userId" example:"a2f1c3d4"`
	Message   string `json:"message" binding:"required" example:"Where is the nearest help booth?"`
	Response  string `json:"response" example:"The nearest booth is at Ram Ghat."`
	SessionID string `json:"sessionId" example:"sess-20270412-01"`
	Language  string `json:"language" example:"hi"`
}

// AskRequest is the assistant question payload
type AskRequest struct {
	Question  string `json:"question" binding:"required" example:"When is the next aarti?"`
	UserID    string `json:"userId" example:"a2f1c3d4"`
	SessionID string `json:"sessionId" example:"sess-20270412-01"`
	Language  string `json:"language" example:"en"`
}

// HandleChatFunc returns a gin handler for the named chat method
func HandleChatFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewChatController(ctx, container)

		switch method {
		case "getMessages":
			controller.GetMessages()
		case "createMessage":
			controller.CreateMessage()
		case "ask":
			controller.Ask()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// 1. GetMessages lists the full chat log
// @Summary      List chat messages
// @Tags         Chat
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /chat-messages [get]
func (c *ChatController) GetMessages() {
	chatService := c.Container.GetService("chat").(services.InterfaceChatService)
	response.Success(c.Ctx, chatService.GetAllMessages())
}

// 2. CreateMessage appends one exchange to the chat log
// @Summary      Append chat message
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request body CreateChatMessageRequest true "message payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /chat-messages [post]
func (c *ChatController) CreateMessage() {
	var req CreateChatMessageRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	chatService := c.Container.GetService("chat").(services.InterfaceChatService)
	msg := chatService.AppendMessage(&models.ChatMessage{
		UserID:    req.UserID,
		Message:   req.Message,
		Response:  req.Response,
		SessionID: req.SessionID,
		Language:  req.Language,
	})
	response.Success(c.Ctx, msg)
}

// 3. Ask answers a pilgrim question and logs the exchange
// @Summary      Ask the assistant
// @Description  Answers via the configured assistant backend, falling back to canned guidance
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request body AskRequest true "question payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /chat/ask [post]
func (c *ChatController) Ask() {
	var req AskRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	chatService := c.Container.GetService("chat").(services.InterfaceChatService)
	msg, err := chatService.Ask(req.Question, req.UserID, req.SessionID, req.Language)
	if err != nil {
		response.Fail(c.Ctx, code.ErrAssistantUnavailable, nil)
		return
	}
	response.Success(c.Ctx, msg)
}
