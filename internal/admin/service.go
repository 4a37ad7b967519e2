package admin

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/bornholm/jis/internal/store"
	"github.com/bornholm/jis/internal/ui"
	"github.com/bornholm/jis/pkg/log"
	"github.com/pkg/errors"
)

func (h *Handler) serveCreateService(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, h.newServiceFormData(r, ServiceForm{}, ""))
}

func (h *Handler) handleCreateService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	form := ServiceForm{
		Category:    r.PostForm.Get("category"),
		Title:       strings.TrimSpace(r.PostForm.Get("title")),
		Summary:     strings.TrimSpace(r.PostForm.Get("summary")),
		Description: strings.TrimSpace(r.PostForm.Get("description")),
	}

	if message := validateServiceForm(form); message != "" {
		render(w, r, http.StatusBadRequest, h.newServiceFormData(r, form, message))
		return
	}

	service := &store.Service{
		Category:    form.Category,
		Title:       form.Title,
		Summary:     form.Summary,
		Description: form.Description,
		AuthorID:    authorID(r),
	}

	if err := h.store.CreateService(ctx, service); err != nil {
		slog.ErrorContext(ctx, "could not create service", log.Error(errors.WithStack(err)))
		render(w, r, http.StatusInternalServerError, h.newServiceFormData(r, form, "The service could not be saved."))
		return
	}

	slog.InfoContext(ctx, "service created", slog.String("serviceID", service.PublicID), slog.String("category", service.Category))

	http.Redirect(w, r, fmt.Sprintf("/services/%s", service.PublicID), http.StatusSeeOther)
}

func validateServiceForm(form ServiceForm) string {
	if form.Title == "" {
		return "A title is required."
	}

	validCategory := slices.ContainsFunc(ui.ServiceLinks, func(item ui.NavbarItem) bool {
		return item.Slug() == form.Category
	})
	if !validCategory {
		return "Please select a valid category."
	}

	return ""
}

func (h *Handler) newServiceFormData(r *http.Request, form ServiceForm, message string) ServiceFormTemplateData {
	return ServiceFormTemplateData{
		PageTemplateData: h.navbar.Page(r, "Create Service"),
		Path:             "create-service",
		FormAction:       h.prefix + "/create-service",
		Categories:       ui.ServiceLinks,
		Form:             form,
		ErrorMessage:     message,
	}
}
