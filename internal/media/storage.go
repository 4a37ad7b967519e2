package media

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("not found")

type ObjectInfo struct {
	Key         string
	ContentType string
	Size        int64
	ModTime     time.Time
}

// Storage persists uploaded media objects.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
}
