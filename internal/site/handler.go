package site

import (
	"net/http"

	"github.com/bornholm/jis/internal/store"
	"github.com/bornholm/jis/internal/ui"
)

// Handler serves the public pages linked from the navbar.
type Handler struct {
	store  *store.Store
	navbar *ui.Navbar
	mux    *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(store *store.Store, navbar *ui.Navbar) *Handler {
	h := &Handler{
		store:  store,
		navbar: navbar,
		mux:    &http.ServeMux{},
	}

	for _, p := range staticPages {
		h.mux.Handle("GET "+p.Pattern, h.serveStatic(p))
	}

	h.mux.HandleFunc("GET /services", h.serveServices)
	h.mux.HandleFunc("GET /services/{id}", h.serveService)

	for _, category := range ui.ServiceLinks {
		h.mux.Handle("GET "+category.URL, h.serveCategory(category))
	}

	h.mux.HandleFunc("GET /portfolio", h.servePortfolio)

	return h
}

var _ http.Handler = &Handler{}
