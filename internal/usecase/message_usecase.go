package usecase

import (
	"errors"
	"fmt"
	"strings"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/logger"

	"gorm.io/gorm"
)

type MessageUseCase interface {
	SubmitMessage(email, body string) (*entity.Message, error)
	ListMessages(page, limit int) ([]*entity.Message, error)
	DeleteMessage(messageID string) error
}

type messageUseCase struct {
	messageRepo persistent.MessageRepository
	logger      *logger.Logger
}

func NewMessageUseCase(messageRepo persistent.MessageRepository, logger *logger.Logger) MessageUseCase {
	return &messageUseCase{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *messageUseCase) SubmitMessage(email, body string) (*entity.Message, error) {
	email = strings.TrimSpace(email)
	body = strings.TrimSpace(body)

	if email == "" || body == "" {
		return nil, validationError("email and message are required")
	}

	message := &entity.Message{
		Email: email,
		Body:  body,
	}
	if err := uc.messageRepo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}
	return message, nil
}

func (uc *messageUseCase) ListMessages(page, limit int) ([]*entity.Message, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return uc.messageRepo.List(limit, (page-1)*limit)
}

func (uc *messageUseCase) DeleteMessage(messageID string) error {
	if err := uc.messageRepo.Delete(messageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: message %s", ErrNotFound, messageID)
		}
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}
