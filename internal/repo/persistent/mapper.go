package persistent

import (
	"inkwell/internal/entity"
	"inkwell/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Content:     m.Content,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		ImageKey:    m.ImageKey,
		AuthorName:  m.AuthorName,
		AuthorImage: m.AuthorImage,
		Live:        m.Live,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Content:     e.Content,
		Category:    e.Category,
		ImageURL:    e.ImageURL,
		ImageKey:    e.ImageKey,
		AuthorName:  e.AuthorName,
		AuthorImage: e.AuthorImage,
		Live:        e.Live,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:             m.ID,
		Username:       m.Username,
		Email:          m.Email,
		AvatarURL:      m.AvatarURL,
		IsAdmin:        m.IsAdmin,
		ProviderUserID: m.ProviderUserID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:             e.ID,
		Username:       e.Username,
		Email:          e.Email,
		AvatarURL:      e.AvatarURL,
		IsAdmin:        e.IsAdmin,
		ProviderUserID: e.ProviderUserID,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToMessageEntity(m *model.MessageModel) *entity.Message {
	if m == nil {
		return nil
	}

	return &entity.Message{
		ID:        m.ID,
		Email:     m.Email,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToMessageModel(e *entity.Message) *model.MessageModel {
	if e == nil {
		return nil
	}

	return &model.MessageModel{
		ID:        e.ID,
		Email:     e.Email,
		Body:      e.Body,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToWishlistItemEntity(m *model.WishlistItemModel) *entity.WishlistItem {
	if m == nil {
		return nil
	}

	return &entity.WishlistItem{
		ID:        m.ID,
		UserID:    m.UserID,
		PostID:    m.PostID,
		Title:     m.Title,
		Category:  m.Category,
		ImageURL:  m.ImageURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToWishlistItemModel(e *entity.WishlistItem) *model.WishlistItemModel {
	if e == nil {
		return nil
	}

	return &model.WishlistItemModel{
		ID:        e.ID,
		UserID:    e.UserID,
		PostID:    e.PostID,
		Title:     e.Title,
		Category:  e.Category,
		ImageURL:  e.ImageURL,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
