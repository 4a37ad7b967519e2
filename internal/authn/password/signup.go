package password

import (
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"github.com/bornholm/jis/internal/authn"
	"github.com/bornholm/jis/internal/store"
	"github.com/bornholm/jis/pkg/log"
	"github.com/pkg/errors"
)

const minPasswordLength = 8

func (h *Handler) serveSignup(w http.ResponseWriter, r *http.Request) {
	if !h.opts.SignupEnabled {
		http.NotFound(w, r)
		return
	}

	if authn.ContextSnapshot(r.Context()).IsAuthenticated {
		http.Redirect(w, r, h.opts.PostLoginPath, http.StatusSeeOther)
		return
	}

	render(w, r, http.StatusOK, h.newTemplateData(r, "signup", "Sign Up"))
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.opts.SignupEnabled {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.PostForm.Get("email"))
	password := r.PostForm.Get("password")
	confirmation := r.PostForm.Get("passwordConfirmation")

	data := h.newTemplateData(r, "signup", "Sign Up")
	data.Email = email

	if message := validateSignup(email, password, confirmation); message != "" {
		data.ErrorMessage = message
		render(w, r, http.StatusBadRequest, data)
		return
	}

	user, err := h.store.CreatePasswordUser(ctx, email, password)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			data.ErrorMessage = "An account already exists for this email."
			render(w, r, http.StatusConflict, data)
			return
		}

		slog.ErrorContext(ctx, "could not create user", log.Error(errors.WithStack(err)))
		data.ErrorMessage = "Sign up is unavailable, please retry later."
		render(w, r, http.StatusInternalServerError, data)
		return
	}

	slog.InfoContext(ctx, "user signed up", slog.Int64("userID", user.ID))

	h.openSession(w, r, user.ID)
}

func validateSignup(email, password, confirmation string) string {
	if _, err := mail.ParseAddress(email); err != nil {
		return "Please enter a valid email address."
	}

	if len(password) < minPasswordLength {
		return "Passwords must be at least 8 characters long."
	}

	if password != confirmation {
		return "Passwords do not match."
	}

	return ""
}
