package service

import (
	"context"
	"crypto/subtle"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gradeview/gradeview-api/internal/models"
	appErrors "github.com/gradeview/gradeview-api/pkg/errors"
)

type messageRepo interface {
	Insert(ctx context.Context, message *models.Message) error
	ListByDateDesc(ctx context.Context) ([]models.Message, error)
}

// ContactRequest is a contact-form submission payload.
type ContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Message string `json:"message" form:"message" validate:"required"`
}

// MessageService handles the contact mailbox: public inserts and the
// password-gated read.
type MessageService struct {
	messages  messageRepo
	validator *validator.Validate
	password  string
	logger    *zap.Logger
}

// NewMessageService constructs MessageService.
func NewMessageService(messages messageRepo, validate *validator.Validate, password string, logger *zap.Logger) *MessageService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{messages: messages, validator: validate, password: password, logger: logger}
}

// Submit validates and stores a contact message with the caller's IP.
func (s *MessageService) Submit(ctx context.Context, req ContactRequest, clientIP string) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Validation("name, email and message are required")
	}

	message := &models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		IPAddr:  clientIP,
	}
	if err := s.messages.Insert(ctx, message); err != nil {
		return err
	}

	s.logger.Info("contact message stored", zap.String("id", message.ID))
	return nil
}

// List returns all messages newest-first after checking the shared secret.
// An unset secret keeps the mailbox closed.
func (s *MessageService) List(ctx context.Context, password string) ([]models.Message, error) {
	if s.password == "" || subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return nil, appErrors.ErrForbidden
	}
	return s.messages.ListByDateDesc(ctx)
}
