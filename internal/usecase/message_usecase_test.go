package usecase

import (
	"testing"

	"inkwell/internal/entity"
	"inkwell/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newMessageUseCase(messageRepo *MockMessageRepository) MessageUseCase {
	return NewMessageUseCase(messageRepo, logger.New())
}

func TestSubmitMessage_Success(t *testing.T) {
	mockRepo := new(MockMessageRepository)
	uc := newMessageUseCase(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*entity.Message")).Return(nil)

	message, err := uc.SubmitMessage("  reader@example.com ", " Loved the last post! ")

	assert.NoError(t, err)
	assert.Equal(t, "reader@example.com", message.Email)
	assert.Equal(t, "Loved the last post!", message.Body)
	mockRepo.AssertExpectations(t)
}

func TestSubmitMessage_MissingBody(t *testing.T) {
	mockRepo := new(MockMessageRepository)
	uc := newMessageUseCase(mockRepo)

	_, err := uc.SubmitMessage("reader@example.com", "   ")

	assert.ErrorIs(t, err, ErrValidation)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestListMessages_DefaultsPaging(t *testing.T) {
	mockRepo := new(MockMessageRepository)
	uc := newMessageUseCase(mockRepo)

	mockMessages := []*entity.Message{{ID: "msg-1", Email: "reader@example.com", Body: "Hi"}}
	mockRepo.On("List", 10, 0).Return(mockMessages, nil)

	messages, err := uc.ListMessages(0, 0)

	assert.NoError(t, err)
	assert.Len(t, messages, 1)
	mockRepo.AssertExpectations(t)
}

func TestListMessages_SecondPage(t *testing.T) {
	mockRepo := new(MockMessageRepository)
	uc := newMessageUseCase(mockRepo)

	mockRepo.On("List", 20, 20).Return([]*entity.Message{}, nil)

	_, err := uc.ListMessages(2, 20)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestDeleteMessage_NotFound(t *testing.T) {
	mockRepo := new(MockMessageRepository)
	uc := newMessageUseCase(mockRepo)

	mockRepo.On("Delete", "msg-404").Return(gorm.ErrRecordNotFound)

	err := uc.DeleteMessage("msg-404")

	assert.ErrorIs(t, err, ErrNotFound)
}
