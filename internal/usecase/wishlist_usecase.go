package usecase

import (
	"errors"
	"fmt"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/logger"

	"gorm.io/gorm"
)

type WishlistUseCase interface {
	AddItem(userID, postID, title, category, imageURL string) (*entity.WishlistItem, error)
	GetWishlist(userID string) ([]*entity.WishlistItem, error)
	// RemoveItem accepts either an entry id or, as a fallback, the post id.
	RemoveItem(userID, id string) error
	IsWishlisted(userID, postID string) (*entity.WishlistItem, error)
}

type wishlistUseCase struct {
	wishlistRepo persistent.WishlistRepository
	logger       *logger.Logger
}

func NewWishlistUseCase(wishlistRepo persistent.WishlistRepository, logger *logger.Logger) WishlistUseCase {
	return &wishlistUseCase{
		wishlistRepo: wishlistRepo,
		logger:       logger,
	}
}

func (uc *wishlistUseCase) AddItem(userID, postID, title, category, imageURL string) (*entity.WishlistItem, error) {
	if userID == "" || postID == "" || title == "" || imageURL == "" {
		return nil, validationError("userId, postId, title and image are required")
	}

	if _, err := uc.wishlistRepo.GetByUserAndPost(userID, postID); err == nil {
		return nil, fmt.Errorf("%w: already in wishlist", ErrConflict)
	}

	item := &entity.WishlistItem{
		UserID:   userID,
		PostID:   postID,
		Title:    title,
		Category: category,
		ImageURL: imageURL,
	}
	if err := uc.wishlistRepo.Create(item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: already in wishlist", ErrConflict)
		}
		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}
	return item, nil
}

func (uc *wishlistUseCase) GetWishlist(userID string) ([]*entity.WishlistItem, error) {
	if userID == "" {
		return nil, validationError("userId is required")
	}
	return uc.wishlistRepo.ListByUser(userID)
}

func (uc *wishlistUseCase) RemoveItem(userID, id string) error {
	err := uc.wishlistRepo.Delete(id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}

	// The client sometimes only knows the post id.
	if err := uc.wishlistRepo.DeleteByUserAndPost(userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: wishlist item %s", ErrNotFound, id)
		}
		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}
	return nil
}

func (uc *wishlistUseCase) IsWishlisted(userID, postID string) (*entity.WishlistItem, error) {
	if userID == "" || postID == "" {
		return nil, validationError("userId and postId are required")
	}

	item, err := uc.wishlistRepo.GetByUserAndPost(userID, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check wishlist: %w", err)
	}
	return item, nil
}
