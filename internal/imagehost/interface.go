package imagehost

import (
	"context"
	"io"
)

// Uploader uploads an image and returns its public HTTPS URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}
