package admin

import (
	"fmt"
	"net/http"

	"github.com/bornholm/jis/internal/authz"
	"github.com/bornholm/jis/internal/media"
	"github.com/bornholm/jis/internal/store"
	"github.com/bornholm/jis/internal/ui"
)

type Handler struct {
	prefix      string
	store       *store.Store
	navbar      *ui.Navbar
	media       media.Storage
	mediaURLs   MediaURLs
	mux         *http.ServeMux
	handler     http.Handler
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}

func NewHandler(prefix string, store *store.Store, navbar *ui.Navbar, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	handler := &Handler{
		prefix:      prefix,
		store:       store,
		navbar:      navbar,
		media:       opts.Media,
		mediaURLs:   opts.MediaURLs,
		mux:         &http.ServeMux{},
	}

	handler.mux.HandleFunc(fmt.Sprintf("GET %s", prefix), handler.serveIndex)
	handler.mux.HandleFunc(fmt.Sprintf("GET %s/{$}", prefix), handler.serveIndex)

	handler.mux.HandleFunc(fmt.Sprintf("GET %s/create-service", prefix), handler.serveCreateService)
	handler.mux.HandleFunc(fmt.Sprintf("POST %s/create-service", prefix), handler.handleCreateService)

	handler.mux.HandleFunc(fmt.Sprintf("GET %s/create-portfolio", prefix), handler.serveCreatePortfolio)
	handler.mux.HandleFunc(fmt.Sprintf("POST %s/create-portfolio", prefix), handler.handleCreatePortfolio)

	handler.handler = authz.RequireAdmin(handler.mux)

	return handler
}

var _ http.Handler = &Handler{}
