package authz

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/jis/internal/authn"
)

// RequireAdmin rejects requests whose snapshot does not carry admin
// privileges. It expects to be mounted behind an authn.Chain.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot := authn.ContextSnapshot(r.Context())

		if !snapshot.IsAuthenticated {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if !snapshot.IsAdmin {
			slog.WarnContext(r.Context(), "forbidden admin access", slog.String("email", snapshot.Email()))
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
