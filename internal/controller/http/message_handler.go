package http

import (
	"net/http"
	"strconv"

	"inkwell/internal/usecase"
	"inkwell/pkg/logger"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUseCase usecase.MessageUseCase
	logger         *logger.Logger
}

func NewMessageHandler(messageUseCase usecase.MessageUseCase, logger *logger.Logger) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
		logger:         logger,
	}
}

type SubmitMessageRequest struct {
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitMessage godoc
// @Summary      Submit a contact-form message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        request body SubmitMessageRequest true "Message"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /messages [post]
func (h *MessageHandler) SubmitMessage(c *gin.Context) {
	var req SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.messageUseCase.SubmitMessage(req.Email, req.Message); err != nil {
		h.logger.Error("Failed to submit message: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}

// ListMessages godoc
// @Summary      List inbox messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 10)"
// @Success      200  {object}  map[string]interface{}
// @Router       /messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	messages, err := h.messageUseCase.ListMessages(page, limit)
	if err != nil {
		h.logger.Error("Failed to list messages: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages, "count": len(messages)})
}

// DeleteMessage godoc
// @Summary      Delete an inbox message
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Message ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /messages/{id} [delete]
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	if err := h.messageUseCase.DeleteMessage(c.Param("id")); err != nil {
		h.logger.Error("Failed to delete message %s: %v", c.Param("id"), err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
