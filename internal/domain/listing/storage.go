package listing

import (
	"context"
	"io"
)

// ImageStore uploads listing images to the external image host and returns a
// durable public URL for each upload.
type ImageStore interface {
	Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error)
}
