package ui

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bornholm/jis/pkg/log"
	"github.com/pkg/errors"
)

const (
	LogoutVariantDesktop = "desktop"
	LogoutVariantMobile  = "mobile"
)

// Session is the auth collaborator able to end the visitor's session.
type Session interface {
	Logout(w http.ResponseWriter, r *http.Request) error
}

// Handler serves the navbar interactions. Each one updates the visitor's
// navbar state, then either re-renders the navbar (HTMX requests) or sends
// the visitor back to the page it came from.
type Handler struct {
	navbar  *Navbar
	session Session
	mux     *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(navbar *Navbar, session Session) *Handler {
	h := &Handler{
		navbar:  navbar,
		session: session,
		mux:     &http.ServeMux{},
	}

	prefix := navbar.Prefix()

	h.mux.HandleFunc(fmt.Sprintf("POST %s/mobile", prefix), h.handleToggleMobileMenu)
	h.mux.HandleFunc(fmt.Sprintf("POST %s/dropdown/{dropdown}", prefix), h.handleToggleDropdown)
	h.mux.HandleFunc(fmt.Sprintf("GET %s/navigate", prefix), h.handleNavigate)
	h.mux.HandleFunc(fmt.Sprintf("POST %s/logout", prefix), h.handleLogout)

	return h
}

var _ http.Handler = &Handler{}

func (h *Handler) handleToggleMobileMenu(w http.ResponseWriter, r *http.Request) {
	state := h.navbar.states.Load(r)
	state.ToggleMobileMenu()

	h.saveState(w, r, state)
	h.respond(w, r, state)
}

func (h *Handler) handleToggleDropdown(w http.ResponseWriter, r *http.Request) {
	dropdown, err := ParseDropdown(r.PathValue("dropdown"))
	if err != nil || dropdown == DropdownNone {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	state := h.navbar.states.Load(r)
	state.ToggleDropdown(dropdown)

	h.saveState(w, r, state)
	h.respond(w, r, state)
}

func (h *Handler) handleNavigate(w http.ResponseWriter, r *http.Request) {
	target, ok := localPath(r.URL.Query().Get("to"))
	if !ok {
		target = "/"
	}

	state := h.navbar.states.Load(r)
	state.CloseMobileMenu()

	h.saveState(w, r, state)

	http.Redirect(w, r, target, http.StatusSeeOther)
}

// handleLogout ends the session then navigates to the root page. Only the
// mobile variant closes the mobile menu.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.session.Logout(w, r); err != nil {
		slog.ErrorContext(ctx, "could not logout", log.Error(errors.WithStack(err)))
	}

	if r.PostFormValue("variant") == LogoutVariantMobile {
		state := h.navbar.states.Load(r)
		state.CloseMobileMenu()
		h.saveState(w, r, state)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) saveState(w http.ResponseWriter, r *http.Request, state NavbarState) {
	if err := h.navbar.states.Save(w, r, state); err != nil {
		slog.ErrorContext(r.Context(), "could not save navbar state", log.Error(errors.WithStack(err)))
	}
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, state NavbarState) {
	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, refererPath(r), http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := templates.ExecuteTemplate(w, "navbar", h.navbar.TemplateData(r, state)); err != nil {
		slog.ErrorContext(r.Context(), "could not execute template", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// localPath validates that raw references a path of this site.
func localPath(raw string) (string, bool) {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "", false
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}

	return u.RequestURI(), true
}

func refererPath(r *http.Request) string {
	referer, err := url.Parse(r.Referer())
	if err != nil || referer.Path == "" {
		return "/"
	}

	if referer.Host != "" && referer.Host != r.Host {
		return "/"
	}

	path, ok := localPath(referer.RequestURI())
	if !ok {
		return "/"
	}

	return path
}
