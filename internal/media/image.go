package media

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"path"
	"slices"

	"github.com/pkg/errors"
	"github.com/rs/xid"
)

const MaxImageSize = 5 << 20

var (
	ErrImageTooLarge    = errors.New("image too large")
	ErrUnsupportedImage = errors.New("unsupported image type")
	supportedImageTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}
	imageExtensions     = map[string]string{
		"image/png":  ".png",
		"image/jpeg": ".jpg",
		"image/gif":  ".gif",
		"image/webp": ".webp",
	}
)

// SaveImage stores an image under dir with a generated name and returns its
// key. The content type is sniffed from the data, the client provided one
// is ignored.
func SaveImage(ctx context.Context, storage Storage, dir string, r io.Reader, size int64) (string, error) {
	if size > MaxImageSize {
		return "", errors.WithStack(ErrImageTooLarge)
	}

	head := make([]byte, 512)

	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", errors.WithStack(err)
	}

	head = head[:n]

	contentType := http.DetectContentType(head)
	if !slices.Contains(supportedImageTypes, contentType) {
		return "", errors.Wrapf(ErrUnsupportedImage, "'%s'", contentType)
	}

	key := path.Join(dir, xid.New().String()+imageExtensions[contentType])

	body := io.MultiReader(bytes.NewReader(head), r)

	if err := storage.Put(ctx, key, body, size, contentType); err != nil {
		return "", errors.WithStack(err)
	}

	return key, nil
}
