package admin

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/bornholm/jis/internal/media"
	"github.com/pkg/errors"
)

type fakeMedia struct {
	mutex sync.Mutex
	keys  []string
}

func (m *fakeMedia) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return errors.WithStack(err)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.keys = append(m.keys, key)

	return nil
}

func (m *fakeMedia) Get(ctx context.Context, key string) (io.ReadCloser, media.ObjectInfo, error) {
	return nil, media.ObjectInfo{}, errors.WithStack(media.ErrNotFound)
}

var _ media.Storage = &fakeMedia{}

func newMultipartRequest(t *testing.T, fields map[string]string, image []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer

	writer := multipart.NewWriter(&body)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	if image != nil {
		part, err := writer.CreateFormFile("image", "cover.png")
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if _, err := part.Write(image); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	req := httptest.NewRequest(http.MethodPost, "/admin/create-portfolio", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestHandlerCreatePortfolioUpload(t *testing.T) {
	storage := &fakeMedia{}
	handler, st := newTestHandler(t, WithMedia(storage, media.NewHandler("/media", storage)))
	admin := newAdmin(t, st)

	t.Run("form", func(t *testing.T) {
		req := withUser(httptest.NewRequest(http.MethodGet, "/admin/create-portfolio", nil), admin)
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		if !strings.Contains(res.Body.String(), `data-admin="image-upload"`) {
			t.Errorf("expected the upload field to be rendered")
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		req := withUser(newMultipartRequest(t, map[string]string{"title": "Shop"}, []byte("plain text")), admin)
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		if e, g := http.StatusBadRequest, res.Code; e != g {
			t.Errorf("res.Code: expected '%v', got '%v'", e, g)
		}

		if e, g := 0, len(storage.keys); e != g {
			t.Errorf("len(storage.keys): expected '%v', got '%v'", e, g)
		}
	})

	t.Run("png", func(t *testing.T) {
		image := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

		req := withUser(newMultipartRequest(t, map[string]string{"title": "Shop", "client": "Ranchi Mart"}, image), admin)
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		if e, g := http.StatusSeeOther, res.Code; e != g {
			t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
		}

		if e, g := 1, len(storage.keys); e != g {
			t.Fatalf("len(storage.keys): expected '%v', got '%v'", e, g)
		}

		items, err := st.ListPortfolioItems(context.Background())
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := 1, len(items); e != g {
			t.Fatalf("len(items): expected '%v', got '%v'", e, g)
		}

		if e, g := "/media/"+storage.keys[0], items[0].ImageURL; e != g {
			t.Errorf("items[0].ImageURL: expected '%v', got '%v'", e, g)
		}
	})
}

func TestHandlerCreatePortfolioWithoutMedia(t *testing.T) {
	handler, st := newTestHandler(t)
	admin := newAdmin(t, st)

	req := withUser(httptest.NewRequest(http.MethodGet, "/admin/create-portfolio", nil), admin)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if strings.Contains(res.Body.String(), `data-admin="image-upload"`) {
		t.Errorf("expected no upload field without media storage")
	}
}
