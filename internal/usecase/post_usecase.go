package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	imageFolder       = "blog_posts"
	inlineImageFolder = "blog_images"
	maxImageSize      = 20 << 20 // 20 MiB

	latestPostsCacheKey = "posts:latest"
	latestPostsCacheTTL = 5 * time.Minute
	defaultLatestLimit  = 10
	maxLatestLimit      = 50
)

type PostUseCase interface {
	CreatePost(title, description, category, content string, imageFile *multipart.FileHeader, authorName, authorImage string) (*entity.Post, error)
	UpdatePost(postID, title, description, category, content string, imageFile *multipart.FileHeader) (*entity.Post, error)
	DeletePost(postID, imageKeyOverride string) error
	ToggleLive(postID string, live bool) (*entity.Post, error)
	GetPost(postID string) (*entity.Post, error)
	ListPosts() ([]*entity.Post, error)
	ListLivePosts(limit int) ([]*entity.Post, error)
	UploadImage(imageFile *multipart.FileHeader) (string, string, error)
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	assets      AssetStore
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	assets AssetStore,
	redisClient *redis.Client,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		assets:      assets,
		redisClient: redisClient,
		logger:      logger,
	}
}

// CreatePost validates everything before touching the asset store, then uploads
// the cover image and only persists the record once the upload succeeded. A post
// must never reference an asset that was not uploaded.
func (uc *postUseCase) CreatePost(title, description, category, content string, imageFile *multipart.FileHeader, authorName, authorImage string) (*entity.Post, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	category = strings.ToLower(strings.TrimSpace(category))
	content = strings.TrimSpace(content)

	if title == "" || description == "" || category == "" || content == "" {
		return nil, validationError("title, description, category and content are required")
	}
	if authorName == "" {
		return nil, validationError("author is required")
	}
	if err := validateImageFile(imageFile); err != nil {
		return nil, err
	}

	imageURL, imageKey, err := uc.uploadImage(imageFile)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	post := &entity.Post{
		Title:       title,
		Description: description,
		Content:     content,
		Category:    category,
		ImageURL:    imageURL,
		ImageKey:    imageKey,
		AuthorName:  authorName,
		AuthorImage: authorImage,
		Live:        true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.invalidateLatestCache()
	return post, nil
}

// UpdatePost requires all four text fields on every call, image replacement
// included. That mirrors the dashboard edit form, which always submits the full
// post; partial updates are deliberately not supported.
func (uc *postUseCase) UpdatePost(postID, title, description, category, content string, imageFile *multipart.FileHeader) (*entity.Post, error) {
	if err := validatePostID(postID); err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	category = strings.ToLower(strings.TrimSpace(category))
	content = strings.TrimSpace(content)

	if title == "" || description == "" || category == "" || content == "" {
		return nil, validationError("title, description, category and content are required")
	}

	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %s", ErrNotFound, postID)
		}
		return nil, fmt.Errorf("failed to load post: %w", err)
	}

	if imageFile != nil {
		if err := validateImageFile(imageFile); err != nil {
			return nil, err
		}

		// Best-effort removal of the old asset. A failed delete orphans the
		// old image at worst; the record must still move to the new pair.
		if post.ImageKey != "" {
			if err := uc.assets.DeleteFile(post.ImageKey); err != nil {
				uc.logger.Warn("Failed to delete old image %s for post %s: %v", post.ImageKey, postID, err)
			}
		}

		imageURL, imageKey, err := uc.uploadImage(imageFile)
		if err != nil {
			return nil, err
		}
		post.ImageURL = imageURL
		post.ImageKey = imageKey
	}

	post.Title = title
	post.Description = description
	post.Category = category
	post.Content = content
	post.UpdatedAt = time.Now()

	if err := uc.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	uc.invalidateLatestCache()
	return post, nil
}

// DeletePost removes the record unconditionally; deleting the remote asset is
// best-effort. An explicit imageKeyOverride takes precedence over the stored key.
func (uc *postUseCase) DeletePost(postID, imageKeyOverride string) error {
	if err := validatePostID(postID); err != nil {
		return err
	}

	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: post %s", ErrNotFound, postID)
		}
		return fmt.Errorf("failed to load post: %w", err)
	}

	keyToDelete := imageKeyOverride
	if keyToDelete == "" {
		keyToDelete = post.ImageKey
	}

	if keyToDelete != "" {
		if err := uc.assets.DeleteFile(keyToDelete); err != nil {
			uc.logger.Warn("Failed to delete image %s for post %s: %v", keyToDelete, postID, err)
		}
	}

	if err := uc.postRepo.Delete(postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	uc.invalidateLatestCache()
	return nil
}

func (uc *postUseCase) ToggleLive(postID string, live bool) (*entity.Post, error) {
	if err := validatePostID(postID); err != nil {
		return nil, err
	}

	if err := uc.postRepo.UpdateLive(postID, live); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %s", ErrNotFound, postID)
		}
		return nil, fmt.Errorf("failed to toggle post visibility: %w", err)
	}

	uc.invalidateLatestCache()

	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	return post, nil
}

func (uc *postUseCase) GetPost(postID string) (*entity.Post, error) {
	if err := validatePostID(postID); err != nil {
		return nil, err
	}

	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %s", ErrNotFound, postID)
		}
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	return post, nil
}

func (uc *postUseCase) ListPosts() ([]*entity.Post, error) {
	return uc.postRepo.List()
}

// ListLivePosts serves the public "latest" feed through a short-lived redis
// cache; mutations invalidate it.
func (uc *postUseCase) ListLivePosts(limit int) ([]*entity.Post, error) {
	if limit <= 0 {
		limit = defaultLatestLimit
	}
	if limit > maxLatestLimit {
		limit = maxLatestLimit
	}

	if cached := uc.readLatestCache(limit); cached != nil {
		return cached, nil
	}

	posts, err := uc.postRepo.ListLive(limit)
	if err != nil {
		return nil, err
	}

	uc.writeLatestCache(limit, posts)
	return posts, nil
}

// UploadImage stores a standalone image for use inside post bodies. Unlike
// cover images, these assets are not tied to a post record, so they live in
// their own folder and are never cleaned up when a post is deleted.
func (uc *postUseCase) UploadImage(imageFile *multipart.FileHeader) (string, string, error) {
	if err := validateImageFile(imageFile); err != nil {
		return "", "", err
	}
	return uc.uploadImageTo(inlineImageFolder, imageFile)
}

func (uc *postUseCase) uploadImage(imageFile *multipart.FileHeader) (string, string, error) {
	return uc.uploadImageTo(imageFolder, imageFile)
}

func (uc *postUseCase) uploadImageTo(folder string, imageFile *multipart.FileHeader) (string, string, error) {
	src, err := imageFile.Open()
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrAssetUpload, err)
	}
	defer src.Close()

	contentType := imageFile.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), fileExtension(imageFile.Filename))
	url, err := uc.assets.UploadFile(key, src, contentType)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrAssetUpload, err)
	}
	return url, key, nil
}

func (uc *postUseCase) readLatestCache(limit int) []*entity.Post {
	if uc.redisClient == nil {
		return nil
	}

	data, err := uc.redisClient.Get(context.Background(), cacheKey(limit)).Result()
	if err != nil {
		return nil
	}

	var posts []*entity.Post
	if err := json.Unmarshal([]byte(data), &posts); err != nil {
		return nil
	}
	return posts
}

func (uc *postUseCase) writeLatestCache(limit int, posts []*entity.Post) {
	if uc.redisClient == nil {
		return
	}

	data, err := json.Marshal(posts)
	if err != nil {
		return
	}
	uc.redisClient.Set(context.Background(), cacheKey(limit), data, latestPostsCacheTTL)
}

func (uc *postUseCase) invalidateLatestCache() {
	if uc.redisClient == nil {
		return
	}

	ctx := context.Background()
	iter := uc.redisClient.Scan(ctx, 0, latestPostsCacheKey+":*", 100).Iterator()
	for iter.Next(ctx) {
		uc.redisClient.Del(ctx, iter.Val())
	}
}

func cacheKey(limit int) string {
	return fmt.Sprintf("%s:%d", latestPostsCacheKey, limit)
}

func validatePostID(postID string) error {
	if _, err := uuid.Parse(postID); err != nil {
		return validationError("invalid post id %q", postID)
	}
	return nil
}

func validateImageFile(imageFile *multipart.FileHeader) error {
	if imageFile == nil {
		return validationError("cover image is required")
	}
	if !strings.HasPrefix(imageFile.Header.Get("Content-Type"), "image/") {
		return validationError("only image files are allowed")
	}
	if imageFile.Size > maxImageSize {
		return validationError("image file exceeds the 20MB limit")
	}
	return nil
}

func fileExtension(filename string) string {
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '.' {
			return filename[i:]
		}
	}
	return ""
}
