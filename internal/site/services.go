package site

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/jis/internal/store"
	"github.com/bornholm/jis/internal/ui"
	"github.com/bornholm/jis/pkg/log"
	"github.com/pkg/errors"
)

func (h *Handler) serveServices(w http.ResponseWriter, r *http.Request) {
	h.renderServices(w, r, ui.NavbarItemServices, "")
}

func (h *Handler) serveCategory(category ui.NavbarItem) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.renderServices(w, r, category, category.Slug())
	})
}

func (h *Handler) renderServices(w http.ResponseWriter, r *http.Request, page ui.NavbarItem, category string) {
	ctx := r.Context()

	services, err := h.store.ListServices(ctx, category)
	if err != nil {
		slog.ErrorContext(ctx, "could not list services", slog.String("category", category), log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := ServicesTemplateData{
		PageTemplateData: h.navbar.Page(r, page.Label),
		Path:             "services",
		Category:         page,
		Categories:       ui.ServiceLinks,
		Services:         make([]ServiceTemplateData, 0, len(services)),
	}

	for _, s := range services {
		data.Services = append(data.Services, NewServiceTemplateData(s))
	}

	render(w, r, data)
}

func (h *Handler) serveService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	service, err := h.store.GetService(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}

		slog.ErrorContext(ctx, "could not get service", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	render(w, r, ServiceDetailTemplateData{
		PageTemplateData: h.navbar.Page(r, service.Title),
		Path:             "service",
		Service:          NewServiceTemplateData(service),
	})
}

func findCategory(slug string) (ui.NavbarItem, bool) {
	for _, c := range ui.ServiceLinks {
		if c.Slug() == slug {
			return c, true
		}
	}

	return ui.NavbarItem{Label: slug}, false
}
