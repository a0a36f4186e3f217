package service

import (
	"context"
	"io"
)

// ObjectUploader stores binary objects and returns their public URL.
type ObjectUploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
