package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradeview/gradeview-api/internal/service"
	appErrors "github.com/gradeview/gradeview-api/pkg/errors"
	"github.com/gradeview/gradeview-api/pkg/response"
)

// MessageHandler serves the contact mailbox.
type MessageHandler struct {
	messages *service.MessageService
}

// NewMessageHandler constructs the message handler.
func NewMessageHandler(messages *service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// Contact stores a contact-form submission.
func (h *MessageHandler) Contact(c *gin.Context) {
	var req service.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Validation("name, email and message are required"))
		return
	}

	if err := h.messages.Submit(c.Request.Context(), req, c.ClientIP()); err != nil {
		response.Error(c, err)
		return
	}
	response.Text(c, http.StatusOK, "Message sent successfully!")
}

type messagesRequest struct {
	Password string `json:"password" form:"password"`
}

// List returns all stored messages after checking the shared secret.
func (h *MessageHandler) List(c *gin.Context) {
	var req messagesRequest
	_ = c.ShouldBind(&req)

	messages, err := h.messages.List(c.Request.Context(), req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, messages)
}
