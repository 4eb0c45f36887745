package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/campus-info-api/internal/models"
	"github.com/campusdesk/campus-info-api/internal/service"
	appErrors "github.com/campusdesk/campus-info-api/pkg/errors"
	"github.com/campusdesk/campus-info-api/pkg/response"
)

// ChatHandler exposes the chatbot endpoint.
type ChatHandler struct {
	chat *service.ChatService
}

// NewChatHandler constructs a new ChatHandler.
func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Ask godoc
// @Summary Answer a free-text campus question
// @Tags Chat
// @Accept json
// @Produce json
// @Param payload body models.AskRequest true "Query payload"
// @Success 200 {object} response.Envelope
// @Router /ask [post]
func (h *ChatHandler) Ask(c *gin.Context) {
	var req models.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "query is required"))
		return
	}
	reply, err := h.chat.Ask(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reply)
}
