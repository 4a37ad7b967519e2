package site

import (
	"net/http"
)

type staticPage struct {
	Pattern string
	Path    string
	Title   string
}

var staticPages = []staticPage{
	{Pattern: "/{$}", Path: "home", Title: ""},
	{Pattern: "/company", Path: "company", Title: "About"},
	{Pattern: "/hire-us", Path: "hire-us", Title: "Hire Us"},
	{Pattern: "/blog", Path: "blog", Title: "Blog"},
	{Pattern: "/contact", Path: "contact", Title: "Contact"},
}

func (h *Handler) serveStatic(page staticPage) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		render(w, r, StaticTemplateData{
			PageTemplateData: h.navbar.Page(r, page.Title),
			Path:             page.Path,
		})
	})
}
