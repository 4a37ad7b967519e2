package oauth2

import (
	"fmt"
	"net/http"

	"github.com/markbates/goth/gothic"
)

type Provider struct {
	ID    string
	Label string
	Icon  string
}

type Handler struct {
	mux                 *http.ServeMux
	providers           []Provider
	prefix              string
	postLoginRedirect   string
	postLogoutRedirect  string
	failureRedirect     string
	onUserAuthenticated OnUserAuthenticatedFunc
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// Providers returns the configured identity providers, in display order.
func (h *Handler) Providers() []Provider {
	return h.providers
}

func NewHandler(funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)
	h := &Handler{
		mux:                 http.NewServeMux(),
		providers:           opts.Providers,
		prefix:              opts.Prefix,
		postLoginRedirect:   opts.PostLoginRedirect,
		postLogoutRedirect:  opts.PostLogoutRedirect,
		failureRedirect:     opts.FailureRedirect,
		onUserAuthenticated: opts.OnUserAuthenticated,
	}

	h.mux.Handle(fmt.Sprintf("GET %s/providers/{provider}", h.prefix), withContextProvider(http.HandlerFunc(h.handleProvider)))
	h.mux.Handle(fmt.Sprintf("GET %s/providers/{provider}/callback", h.prefix), withContextProvider(http.HandlerFunc(h.handleProviderCallback)))
	h.mux.Handle(fmt.Sprintf("GET %s/providers/{provider}/logout", h.prefix), withContextProvider(http.HandlerFunc(h.handleProviderLogout)))

	return h
}

var _ http.Handler = &Handler{}

func withContextProvider(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		provider := r.PathValue("provider")
		h.ServeHTTP(w, gothic.GetContextWithProvider(r, provider))
	}

	return http.HandlerFunc(fn)
}
