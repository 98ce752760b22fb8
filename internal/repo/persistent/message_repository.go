package persistent

import (
	"inkwell/internal/entity"
	"inkwell/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(message *entity.Message) error
	List(limit, offset int) ([]*entity.Message, error)
	Delete(id string) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *entity.Message) error {
	messageModel := ToMessageModel(message)
	if messageModel.ID == "" {
		messageModel.ID = uuid.New().String()
	}
	if err := r.db.Create(messageModel).Error; err != nil {
		return err
	}
	*message = *ToMessageEntity(messageModel)
	return nil
}

func (r *messageRepository) List(limit, offset int) ([]*entity.Message, error) {
	var messageModels []model.MessageModel
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&messageModels).Error; err != nil {
		return nil, err
	}

	messages := make([]*entity.Message, len(messageModels))
	for i := range messageModels {
		messages[i] = ToMessageEntity(&messageModels[i])
	}
	return messages, nil
}

func (r *messageRepository) Delete(id string) error {
	result := r.db.Delete(&model.MessageModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
