package pprof

import (
	"expvar"
	"fmt"
	"net/http"
	"net/http/pprof"
)

// Handler exposes runtime profiles and expvar metrics under a prefix. It
// does not restrict access by itself.
type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(prefix string) *Handler {
	mux := &http.ServeMux{}

	routes := map[string]http.HandlerFunc{
		"{$}":     pprof.Index,
		"cmdline": pprof.Cmdline,
		"profile": pprof.Profile,
		"symbol":  pprof.Symbol,
		"trace":   pprof.Trace,
		"vars":    expvar.Handler().ServeHTTP,
	}

	for path, handler := range routes {
		mux.HandleFunc(fmt.Sprintf("GET %s/%s", prefix, path), handler)
	}

	// Named runtime profiles: heap, goroutine, allocs, block, mutex...
	mux.HandleFunc(fmt.Sprintf("GET %s/{name}", prefix), func(w http.ResponseWriter, r *http.Request) {
		pprof.Handler(r.PathValue("name")).ServeHTTP(w, r)
	})

	return &Handler{mux}
}

var _ http.Handler = &Handler{}
