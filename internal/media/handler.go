package media

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/bornholm/jis/pkg/log"
	"github.com/pkg/errors"
)

// Handler serves stored media objects.
type Handler struct {
	prefix  string
	storage Storage
	mux     *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// URL returns the public URL of the object identified by key.
func (h *Handler) URL(key string) string {
	return h.prefix + "/" + strings.TrimPrefix(key, "/")
}

func NewHandler(prefix string, storage Storage) *Handler {
	h := &Handler{
		prefix:  prefix,
		storage: storage,
		mux:     &http.ServeMux{},
	}

	h.mux.HandleFunc(fmt.Sprintf("GET %s/{key...}", prefix), h.serveObject)

	return h
}

func (h *Handler) serveObject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := r.PathValue("key")

	if key == "" || strings.Contains(key, "..") {
		http.NotFound(w, r)
		return
	}

	reader, info, err := h.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.NotFound(w, r)
			return
		}

		slog.ErrorContext(ctx, "could not get media object", slog.String("key", key), log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	defer reader.Close()

	w.Header().Set("Content-Type", info.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if _, err := io.Copy(w, reader); err != nil {
		slog.ErrorContext(ctx, "could not send media object", slog.String("key", key), log.Error(errors.WithStack(err)))
	}
}

var _ http.Handler = &Handler{}
