package password

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/jis/internal/authn"
	"github.com/bornholm/jis/pkg/log"
	"github.com/pkg/errors"
)

func (h *Handler) serveLogin(w http.ResponseWriter, r *http.Request) {
	if authn.ContextSnapshot(r.Context()).IsAuthenticated {
		http.Redirect(w, r, h.opts.PostLoginPath, http.StatusSeeOther)
		return
	}

	render(w, r, http.StatusOK, h.newTemplateData(r, "login", "Login"))
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.PostForm.Get("email"))
	password := r.PostForm.Get("password")

	data := h.newTemplateData(r, "login", "Login")
	data.Email = email

	user, err := h.store.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, authn.ErrUnauthenticated) {
			slog.InfoContext(ctx, "invalid credentials", slog.String("email", email))
			data.ErrorMessage = "Invalid email or password."
			render(w, r, http.StatusUnauthorized, data)
			return
		}

		slog.ErrorContext(ctx, "could not authenticate user", log.Error(errors.WithStack(err)))
		data.ErrorMessage = "Login is unavailable, please retry later."
		render(w, r, http.StatusInternalServerError, data)
		return
	}

	h.openSession(w, r, user.ID)
}

func (h *Handler) openSession(w http.ResponseWriter, r *http.Request, userID int64) {
	ctx := r.Context()

	if err := h.sessions.Login(w, r, userID); err != nil {
		slog.ErrorContext(ctx, "could not open session", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.store.MarkUserConnected(ctx, userID); err != nil {
		slog.ErrorContext(ctx, "could not mark user as connected", log.Error(errors.WithStack(err)))
	}

	http.Redirect(w, r, h.opts.PostLoginPath, http.StatusSeeOther)
}
