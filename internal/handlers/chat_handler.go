package handlers

import (
	"errors"

	"citytransit/internal/middleware"
	"citytransit/internal/models"
	"citytransit/internal/services"
	"citytransit/internal/utils"
	"citytransit/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// SendMessage submits a message to the assistant and returns it with the
// reply attached.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	message, err := h.chatService.Send(c.Request.Context(), userID, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			utils.ValidationErrorResponse(c, map[string]string{"message": "message must not be empty"})
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	metrics.ChatMessages.WithLabelValues(string(message.Intent)).Inc()

	utils.SuccessResponse(c, "Message processed successfully", gin.H{"message": message})
}

// ChatHistory returns the caller's recent conversation.
func (h *ChatHandler) ChatHistory(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	messages, err := h.chatService.History(c.Request.Context(), userID)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Chat history retrieved successfully", gin.H{"messages": messages})
}
