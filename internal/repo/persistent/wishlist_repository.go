package persistent

import (
	"inkwell/internal/entity"
	"inkwell/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WishlistRepository interface {
	Create(item *entity.WishlistItem) error
	GetByUserAndPost(userID, postID string) (*entity.WishlistItem, error)
	ListByUser(userID string) ([]*entity.WishlistItem, error)
	Delete(id string) error
	DeleteByUserAndPost(userID, postID string) error
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Create(item *entity.WishlistItem) error {
	itemModel := ToWishlistItemModel(item)
	if itemModel.ID == "" {
		itemModel.ID = uuid.New().String()
	}
	if err := r.db.Create(itemModel).Error; err != nil {
		return err
	}
	*item = *ToWishlistItemEntity(itemModel)
	return nil
}

func (r *wishlistRepository) GetByUserAndPost(userID, postID string) (*entity.WishlistItem, error) {
	var itemModel model.WishlistItemModel
	if err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&itemModel).Error; err != nil {
		return nil, err
	}
	return ToWishlistItemEntity(&itemModel), nil
}

func (r *wishlistRepository) ListByUser(userID string) ([]*entity.WishlistItem, error) {
	var itemModels []model.WishlistItemModel
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]*entity.WishlistItem, len(itemModels))
	for i := range itemModels {
		items[i] = ToWishlistItemEntity(&itemModels[i])
	}
	return items, nil
}

func (r *wishlistRepository) Delete(id string) error {
	result := r.db.Delete(&model.WishlistItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *wishlistRepository) DeleteByUserAndPost(userID, postID string) error {
	result := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.WishlistItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
