package admin

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

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

// DashboardTemplateData contains the data needed to render the admin dashboard
type DashboardTemplateData struct {
	ui.PageTemplateData
	Path           string
	UserCount      int64
	ServiceCount   int64
	PortfolioCount int64
	RecentUsers    []UserTemplateData
}

type ServiceForm struct {
	Category    string
	Title       string
	Summary     string
	Description string
}

// ServiceFormTemplateData contains the data needed to render the service creation form
type ServiceFormTemplateData struct {
	ui.PageTemplateData
	Path         string
	FormAction   string
	Categories   []ui.NavbarItem
	Form         ServiceForm
	ErrorMessage string
}

type PortfolioForm struct {
	Title       string
	Client      string
	URL         string
	ImageURL    string
	Description string
}

// PortfolioFormTemplateData contains the data needed to render the portfolio creation form
type PortfolioFormTemplateData struct {
	ui.PageTemplateData
	Path           string
	FormAction     string
	UploadsEnabled bool
	Form           PortfolioForm
	ErrorMessage   string
}

func render(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := templates.ExecuteTemplate(w, "index", data); err != nil {
		slog.ErrorContext(r.Context(), "could not execute template", log.Error(errors.WithStack(err)))
	}
}
