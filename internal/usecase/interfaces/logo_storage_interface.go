package interfaces

import (
	"context"
	"io"
)

// ILogoStorage abstracts the object store holding partner logos (S3 bucket
// company-logos). Upload returns the public URL of the stored object.
type ILogoStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (publicURL string, err error)
	Remove(ctx context.Context, key string) error
}
