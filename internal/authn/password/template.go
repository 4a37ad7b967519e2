package password

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/bornholm/jis/internal/authn/oauth2"
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

type FormTemplateData struct {
	ui.PageTemplateData
	Path           string
	LoginPath      string
	SignupPath     string
	SignupEnabled  bool
	Providers      []oauth2.Provider
	ProviderPrefix string
	Email          string
	ErrorMessage   string
}

func render(w http.ResponseWriter, r *http.Request, status int, data FormTemplateData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := templates.ExecuteTemplate(w, "index", data); err != nil {
		slog.ErrorContext(r.Context(), "could not execute template", log.Error(errors.WithStack(err)))
	}
}
