package site

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/jis/internal/store"
	"github.com/bornholm/jis/internal/ui"
	"github.com/bornholm/jis/pkg/log"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

type StaticTemplateData struct {
	ui.PageTemplateData
	Path string
}

type ServiceTemplateData struct {
	PublicID      string
	CategoryLabel string
	CategoryURL   string
	Title         string
	Summary       string
	Description   string
	CreatedAt     time.Time
}

type ServicesTemplateData struct {
	ui.PageTemplateData
	Path       string
	Category   ui.NavbarItem
	Categories []ui.NavbarItem
	Services   []ServiceTemplateData
}

type ServiceDetailTemplateData struct {
	ui.PageTemplateData
	Path    string
	Service ServiceTemplateData
}

type PortfolioItemTemplateData struct {
	Title       string
	Client      string
	URL         string
	ImageURL    string
	Description string
	CreatedAt   time.Time
}

type PortfolioTemplateData struct {
	ui.PageTemplateData
	Path  string
	Items []PortfolioItemTemplateData
}

func NewServiceTemplateData(service *store.Service) ServiceTemplateData {
	category, _ := findCategory(service.Category)

	return ServiceTemplateData{
		PublicID:      service.PublicID,
		CategoryLabel: category.Label,
		CategoryURL:   category.URL,
		Title:         service.Title,
		Summary:       service.Summary,
		Description:   service.Description,
		CreatedAt:     service.CreatedAt,
	}
}

func NewPortfolioItemTemplateData(item *store.PortfolioItem) PortfolioItemTemplateData {
	return PortfolioItemTemplateData{
		Title:       item.Title,
		Client:      item.Client,
		URL:         item.URL,
		ImageURL:    item.ImageURL,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
	}
}

func render(w http.ResponseWriter, r *http.Request, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := templates.ExecuteTemplate(w, "index", data); err != nil {
		slog.ErrorContext(r.Context(), "could not execute template", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
