package usecase

import (
	"errors"
	"strings"
	"testing"

	"inkwell/internal/entity"
	"inkwell/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

const testPostID = "5f7c9c1e-8a4b-4c3d-9e2f-1a2b3c4d5e6f"

func newPostUseCase(postRepo *MockPostRepository, assets *MockAssetStore) PostUseCase {
	return NewPostUseCase(postRepo, assets, nil, logger.New())
}

func uploadedKeyMatcher(ext string) interface{} {
	return mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "blog_posts/") && strings.HasSuffix(key, ext)
	})
}

func TestCreatePost_Success(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	imageFile := newImageFileHeader(t, "cover.png", "image/png", []byte("fake-png-bytes"))

	mockAssets.On("UploadFile", uploadedKeyMatcher(".png"), mock.Anything, "image/png").
		Return("https://cdn.example.com/blog_posts/cover.png", nil)
	mockRepo.On("Create", mock.AnythingOfType("*entity.Post")).Return(nil)

	post, err := uc.CreatePost("  My Title ", "A description", "Coding", "Some content", imageFile, "Jane Doe", "https://example.com/jane.png")

	assert.NoError(t, err)
	assert.Equal(t, "My Title", post.Title)
	assert.Equal(t, "coding", post.Category)
	assert.True(t, post.Live)
	assert.Equal(t, "https://cdn.example.com/blog_posts/cover.png", post.ImageURL)
	assert.True(t, strings.HasPrefix(post.ImageKey, "blog_posts/"))
	assert.Equal(t, "Jane Doe", post.AuthorName)

	mockRepo.AssertExpectations(t)
	mockAssets.AssertExpectations(t)
}

func TestCreatePost_MissingFields(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	imageFile := newImageFileHeader(t, "cover.png", "image/png", []byte("fake-png-bytes"))

	_, err := uc.CreatePost("Title", "", "coding", "Content", imageFile, "Jane Doe", "")

	assert.ErrorIs(t, err, ErrValidation)
	mockAssets.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreatePost_MissingImage(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	_, err := uc.CreatePost("Title", "Description", "coding", "Content", nil, "Jane Doe", "")

	assert.ErrorIs(t, err, ErrValidation)
	mockAssets.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePost_RejectsNonImage(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	pdfFile := newImageFileHeader(t, "cover.pdf", "application/pdf", []byte("%PDF-1.4"))

	_, err := uc.CreatePost("Title", "Description", "coding", "Content", pdfFile, "Jane Doe", "")

	assert.ErrorIs(t, err, ErrValidation)
	mockAssets.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePost_RejectsOversizedImage(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	imageFile := newImageFileHeader(t, "cover.png", "image/png", []byte("fake-png-bytes"))
	imageFile.Size = maxImageSize + 1

	_, err := uc.CreatePost("Title", "Description", "coding", "Content", imageFile, "Jane Doe", "")

	assert.ErrorIs(t, err, ErrValidation)
	mockAssets.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePost_UploadFailure(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	imageFile := newImageFileHeader(t, "cover.png", "image/png", []byte("fake-png-bytes"))

	mockAssets.On("UploadFile", mock.Anything, mock.Anything, "image/png").
		Return("", errors.New("connection reset"))

	_, err := uc.CreatePost("Title", "Description", "coding", "Content", imageFile, "Jane Doe", "")

	assert.ErrorIs(t, err, ErrAssetUpload)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdatePost_ReplacesImage(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	existing := &entity.Post{
		ID:       testPostID,
		Title:    "Old Title",
		ImageURL: "https://cdn.example.com/blog_posts/old.jpg",
		ImageKey: "blog_posts/old.jpg",
	}

	mockRepo.On("GetByID", testPostID).Return(existing, nil)
	mockAssets.On("DeleteFile", "blog_posts/old.jpg").Return(nil)
	mockAssets.On("UploadFile", uploadedKeyMatcher(".png"), mock.Anything, "image/png").
		Return("https://cdn.example.com/blog_posts/new.png", nil)
	mockRepo.On("Update", mock.AnythingOfType("*entity.Post")).Return(nil)

	imageFile := newImageFileHeader(t, "new.png", "image/png", []byte("fake-png-bytes"))
	post, err := uc.UpdatePost(testPostID, "New Title", "New description", "Design", "New content", imageFile)

	assert.NoError(t, err)
	assert.Equal(t, "New Title", post.Title)
	assert.Equal(t, "design", post.Category)
	assert.Equal(t, "https://cdn.example.com/blog_posts/new.png", post.ImageURL)
	assert.NotEqual(t, "blog_posts/old.jpg", post.ImageKey)

	mockRepo.AssertExpectations(t)
	mockAssets.AssertExpectations(t)
}

func TestUpdatePost_OldImageDeleteFailureTolerated(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	existing := &entity.Post{
		ID:       testPostID,
		ImageURL: "https://cdn.example.com/blog_posts/old.jpg",
		ImageKey: "blog_posts/old.jpg",
	}

	mockRepo.On("GetByID", testPostID).Return(existing, nil)
	mockAssets.On("DeleteFile", "blog_posts/old.jpg").Return(errors.New("access denied"))
	mockAssets.On("UploadFile", mock.Anything, mock.Anything, "image/png").
		Return("https://cdn.example.com/blog_posts/new.png", nil)
	mockRepo.On("Update", mock.AnythingOfType("*entity.Post")).Return(nil)

	imageFile := newImageFileHeader(t, "new.png", "image/png", []byte("fake-png-bytes"))
	post, err := uc.UpdatePost(testPostID, "Title", "Description", "coding", "Content", imageFile)

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/blog_posts/new.png", post.ImageURL)
	mockRepo.AssertExpectations(t)
	mockAssets.AssertExpectations(t)
}

func TestUpdatePost_KeepsImageWhenNoneProvided(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	existing := &entity.Post{
		ID:       testPostID,
		ImageURL: "https://cdn.example.com/blog_posts/old.jpg",
		ImageKey: "blog_posts/old.jpg",
	}

	mockRepo.On("GetByID", testPostID).Return(existing, nil)
	mockRepo.On("Update", mock.AnythingOfType("*entity.Post")).Return(nil)

	post, err := uc.UpdatePost(testPostID, "Title", "Description", "coding", "Content", nil)

	assert.NoError(t, err)
	assert.Equal(t, "blog_posts/old.jpg", post.ImageKey)
	mockAssets.AssertNotCalled(t, "DeleteFile", mock.Anything)
	mockAssets.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestUpdatePost_RequiresAllFields(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	_, err := uc.UpdatePost(testPostID, "Title", "Description", "coding", "", nil)

	assert.ErrorIs(t, err, ErrValidation)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestUpdatePost_NotFound(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	mockRepo.On("GetByID", testPostID).Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.UpdatePost(testPostID, "Title", "Description", "coding", "Content", nil)

	assert.ErrorIs(t, err, ErrNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestDeletePost_UsesStoredKey(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	existing := &entity.Post{ID: testPostID, ImageKey: "blog_posts/stored.jpg"}

	mockRepo.On("GetByID", testPostID).Return(existing, nil)
	mockAssets.On("DeleteFile", "blog_posts/stored.jpg").Return(nil)
	mockRepo.On("Delete", testPostID).Return(nil)

	err := uc.DeletePost(testPostID, "")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockAssets.AssertExpectations(t)
}

func TestDeletePost_OverrideKeyTakesPrecedence(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	existing := &entity.Post{ID: testPostID, ImageKey: "blog_posts/stored.jpg"}

	mockRepo.On("GetByID", testPostID).Return(existing, nil)
	mockAssets.On("DeleteFile", "blog_posts/override.jpg").Return(nil)
	mockRepo.On("Delete", testPostID).Return(nil)

	err := uc.DeletePost(testPostID, "blog_posts/override.jpg")

	assert.NoError(t, err)
	mockAssets.AssertNotCalled(t, "DeleteFile", "blog_posts/stored.jpg")
	mockRepo.AssertExpectations(t)
	mockAssets.AssertExpectations(t)
}

func TestDeletePost_AssetDeleteFailureStillRemovesRecord(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	existing := &entity.Post{ID: testPostID, ImageKey: "blog_posts/stored.jpg"}

	mockRepo.On("GetByID", testPostID).Return(existing, nil)
	mockAssets.On("DeleteFile", "blog_posts/stored.jpg").Return(errors.New("timeout"))
	mockRepo.On("Delete", testPostID).Return(nil)

	err := uc.DeletePost(testPostID, "")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestDeletePost_NotFound(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	mockRepo.On("GetByID", testPostID).Return(nil, gorm.ErrRecordNotFound)

	err := uc.DeletePost(testPostID, "")

	assert.ErrorIs(t, err, ErrNotFound)
	mockAssets.AssertNotCalled(t, "DeleteFile", mock.Anything)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestToggleLive_Success(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	toggled := &entity.Post{ID: testPostID, Live: false}

	mockRepo.On("UpdateLive", testPostID, false).Return(nil)
	mockRepo.On("GetByID", testPostID).Return(toggled, nil)

	post, err := uc.ToggleLive(testPostID, false)

	assert.NoError(t, err)
	assert.False(t, post.Live)
	mockRepo.AssertExpectations(t)
}

func TestToggleLive_NotFound(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	mockRepo.On("UpdateLive", testPostID, true).Return(gorm.ErrRecordNotFound)

	_, err := uc.ToggleLive(testPostID, true)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPost_InvalidID(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	_, err := uc.GetPost("not-a-uuid")

	assert.ErrorIs(t, err, ErrValidation)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestListLivePosts_DefaultsLimit(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	mockPosts := []*entity.Post{{ID: testPostID, Live: true}}
	mockRepo.On("ListLive", 10).Return(mockPosts, nil)

	posts, err := uc.ListLivePosts(0)

	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	mockRepo.AssertExpectations(t)
}

func TestListLivePosts_CapsLimit(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	// An oversized limit must not reach the repository as-is.
	mockRepo.On("ListLive", maxLatestLimit).Return([]*entity.Post{}, nil)

	_, err := uc.ListLivePosts(1000000)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "ListLive", 1000000)
}

func TestUploadImage_StoresInOwnFolder(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	imageFile := newImageFileHeader(t, "inline.png", "image/png", []byte("fake-png-bytes"))

	keyMatcher := mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "blog_images/") && strings.HasSuffix(key, ".png")
	})
	mockAssets.On("UploadFile", keyMatcher, mock.Anything, "image/png").
		Return("https://cdn.example.com/blog_images/inline.png", nil)

	url, key, err := uc.UploadImage(imageFile)

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/blog_images/inline.png", url)
	assert.True(t, strings.HasPrefix(key, "blog_images/"))
	mockAssets.AssertExpectations(t)
}

func TestUploadImage_RejectsNonImage(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	pdfFile := newImageFileHeader(t, "doc.pdf", "application/pdf", []byte("%PDF-1.4"))

	_, _, err := uc.UploadImage(pdfFile)

	assert.ErrorIs(t, err, ErrValidation)
	mockAssets.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadImage_StoreFailure(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockAssets := new(MockAssetStore)
	uc := newPostUseCase(mockRepo, mockAssets)

	imageFile := newImageFileHeader(t, "inline.png", "image/png", []byte("fake-png-bytes"))

	mockAssets.On("UploadFile", mock.Anything, mock.Anything, "image/png").
		Return("", errors.New("connection reset"))

	_, _, err := uc.UploadImage(imageFile)

	assert.ErrorIs(t, err, ErrAssetUpload)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}
