package usecase

import "io"

// AssetStore is the remote image store. pkg/s3.Client satisfies it.
type AssetStore interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
}

// EmailPublisher enqueues transactional email tasks. pkg/queue.Client satisfies it.
type EmailPublisher interface {
	PublishEmailTask(task map[string]interface{}) error
}
