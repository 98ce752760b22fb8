package persistent

import (
	"inkwell/internal/entity"
	"inkwell/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	List() ([]*entity.Post, error)
	ListLive(limit int) ([]*entity.Post, error)
	Update(post *entity.Post) error
	UpdateLive(id string, live bool) error
	Delete(id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List() ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) ListLive(limit int) ([]*entity.Post, error) {
	var postModels []model.PostModel
	query := r.db.Where("live = ?", true).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) Update(post *entity.Post) error {
	postModel := ToPostModel(post)
	return r.db.Save(postModel).Error
}

func (r *postRepository) UpdateLive(id string, live bool) error {
	// UpdateColumn skips the gorm hooks so updated_at stays untouched; the
	// toggle must not look like a content edit.
	result := r.db.Model(&model.PostModel{}).Where("id = ?", id).UpdateColumn("live", live)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postRepository) Delete(id string) error {
	return r.db.Delete(&model.PostModel{}, "id = ?", id).Error
}
