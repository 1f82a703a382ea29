package imagehost

import (
	"context"
	"io"
	"sync"
)

// MockUploader is a mock implementation of the Uploader interface for testing.
type MockUploader struct {
	mu sync.Mutex

	UploadFunc func(ctx context.Context, filename string, file io.Reader) (string, error)

	UploadCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockUploader {
	return &MockUploader{}
}

var _ Uploader = (*MockUploader)(nil)

func (m *MockUploader) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	m.mu.Lock()
	m.UploadCalls = append(m.UploadCalls, filename)
	fn := m.UploadFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, filename, file)
	}
	return "https://res.example.com/mock.jpg", nil
}
