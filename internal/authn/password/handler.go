package password

import (
	"net/http"

	"github.com/bornholm/jis/internal/authn"
	"github.com/bornholm/jis/internal/ratelimit"
	"github.com/bornholm/jis/internal/store"
	"github.com/bornholm/jis/internal/ui"
)

// Handler serves the email/password login and signup pages.
type Handler struct {
	store    *store.Store
	sessions *authn.SessionManager
	navbar   *ui.Navbar
	opts     *Options
	mux      *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(store *store.Store, sessions *authn.SessionManager, navbar *ui.Navbar, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		store:    store,
		sessions: sessions,
		navbar:   navbar,
		opts:     opts,
		mux:      &http.ServeMux{},
	}

	h.mux.HandleFunc("GET "+opts.LoginPath, h.serveLogin)
	h.mux.Handle("POST "+opts.LoginPath, h.limit(http.HandlerFunc(h.handleLogin)))

	h.mux.HandleFunc("GET "+opts.SignupPath, h.serveSignup)
	h.mux.Handle("POST "+opts.SignupPath, h.limit(http.HandlerFunc(h.handleSignup)))

	return h
}

func (h *Handler) limit(next http.Handler) http.Handler {
	if h.opts.RateLimiter == nil {
		return next
	}

	return h.opts.RateLimiter.Middleware(ratelimit.RemoteIP)(next)
}

func (h *Handler) newTemplateData(r *http.Request, path string, title string) FormTemplateData {
	return FormTemplateData{
		PageTemplateData: h.navbar.Page(r, title),
		Path:             path,
		LoginPath:        h.opts.LoginPath,
		SignupPath:       h.opts.SignupPath,
		SignupEnabled:    h.opts.SignupEnabled,
		Providers:        h.opts.Providers,
		ProviderPrefix:   h.opts.ProviderPrefix,
	}
}

var _ http.Handler = &Handler{}
