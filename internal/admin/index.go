package admin

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/jis/pkg/log"
	"github.com/pkg/errors"
)

const recentUsersLimit = 10

// serveIndex handles requests for the admin dashboard
func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := DashboardTemplateData{
		PageTemplateData: h.navbar.Page(r, "Admin Dashboard"),
		Path:             "dashboard",
		RecentUsers:      []UserTemplateData{},
	}

	var err error

	if data.UserCount, err = h.store.CountUsers(ctx); err != nil {
		slog.ErrorContext(ctx, "could not count users", log.Error(errors.WithStack(err)))
	}

	if data.ServiceCount, err = h.store.CountServices(ctx); err != nil {
		slog.ErrorContext(ctx, "could not count services", log.Error(errors.WithStack(err)))
	}

	if data.PortfolioCount, err = h.store.CountPortfolioItems(ctx); err != nil {
		slog.ErrorContext(ctx, "could not count portfolio items", log.Error(errors.WithStack(err)))
	}

	users, err := h.store.ListRecentUsers(ctx, recentUsersLimit)
	if err != nil {
		slog.ErrorContext(ctx, "could not list recent users", log.Error(errors.WithStack(err)))
	}

	for _, u := range users {
		data.RecentUsers = append(data.RecentUsers, NewUserTemplateData(u))
	}

	render(w, r, http.StatusOK, data)
}
