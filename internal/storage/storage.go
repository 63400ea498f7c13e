// Package storage persists post image attachments. Handlers talk to
// the ImageStore interface; the disk backend serves development and
// tests, the MinIO backend serves deployments with an S3-compatible
// object store.
package storage

import (
	"context"
	"io"
	"path/filepath"

	"github.com/google/uuid"
)

// ImageStore saves an uploaded image and returns the path it is
// reachable under.
type ImageStore interface {
	Save(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error)
}

// objectKey keeps the original extension but replaces the client-chosen
// name, so uploads cannot collide or traverse paths.
func objectKey(filename string) string {
	return uuid.NewString() + filepath.Ext(filepath.Base(filename))
}
