package usecase

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock implementation of persistent.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *entity.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) List() ([]*entity.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) ListLive(limit int) ([]*entity.Post, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) Update(post *entity.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) UpdateLive(id string, live bool) error {
	args := m.Called(id, live)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) List() ([]*entity.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockMessageRepository is a mock implementation of persistent.MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(message *entity.Message) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MockMessageRepository) List(limit, offset int) ([]*entity.Message, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Message), args.Error(1)
}

func (m *MockMessageRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockWishlistRepository is a mock implementation of persistent.WishlistRepository
type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) Create(item *entity.WishlistItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockWishlistRepository) GetByUserAndPost(userID, postID string) (*entity.WishlistItem, error) {
	args := m.Called(userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WishlistItem), args.Error(1)
}

func (m *MockWishlistRepository) ListByUser(userID string) ([]*entity.WishlistItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.WishlistItem), args.Error(1)
}

func (m *MockWishlistRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockWishlistRepository) DeleteByUserAndPost(userID, postID string) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

// MockAssetStore is a mock implementation of AssetStore
type MockAssetStore struct {
	mock.Mock
}

func (m *MockAssetStore) UploadFile(key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(key, file, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockAssetStore) DeleteFile(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

// MockEmailPublisher is a mock implementation of EmailPublisher
type MockEmailPublisher struct {
	mock.Mock
}

func (m *MockEmailPublisher) PublishEmailTask(task map[string]interface{}) error {
	args := m.Called(task)
	return args.Error(0)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)
var _ persistent.UserRepository = (*MockUserRepository)(nil)
var _ persistent.MessageRepository = (*MockMessageRepository)(nil)
var _ persistent.WishlistRepository = (*MockWishlistRepository)(nil)
var _ AssetStore = (*MockAssetStore)(nil)
var _ EmailPublisher = (*MockEmailPublisher)(nil)

// newImageFileHeader builds a real multipart file header that can be opened
// by the code under test.
func newImageFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="coverImage"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("Failed to create multipart part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Failed to write multipart content: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("Failed to parse multipart form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["coverImage"][0]
}
