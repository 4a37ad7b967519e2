package site

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/jis/pkg/log"
	"github.com/pkg/errors"
)

func (h *Handler) servePortfolio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.store.ListPortfolioItems(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not list portfolio items", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := PortfolioTemplateData{
		PageTemplateData: h.navbar.Page(r, "Portfolio"),
		Path:             "portfolio",
		Items:            make([]PortfolioItemTemplateData, 0, len(items)),
	}

	for _, item := range items {
		data.Items = append(data.Items, NewPortfolioItemTemplateData(item))
	}

	render(w, r, data)
}
