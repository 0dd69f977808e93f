package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodee-backend/internal/domains/chatbot/model"
	"foodee-backend/internal/domains/chatbot/service"
	"foodee-backend/internal/shared"
	"foodee-backend/internal/shared/response"
)

type ChatbotHandler struct {
	service service.ServiceInterface
}

func NewChatbotHandler(service service.ServiceInterface) *ChatbotHandler {
	return &ChatbotHandler{service: service}
}

// Chat POST /api/chatbot
func (h *ChatbotHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if !response.BindJSON(c, &req) {
		return
	}
	if err := shared.ValidationFailed(req.Validate()); err != nil {
		response.HandleError(c, err)
		return
	}

	resp := h.service.Chat(c.Request.Context(), req.Message)
	response.Success(c, http.StatusOK, resp.Message, resp)
}
