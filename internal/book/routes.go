package book

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the book endpoints. enrichGuard, when non-nil, wraps the
// enrichment trigger.
func (h *HTTPHandler) Routes(enrichGuard func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/query/{country}", h.QueryByCountry)
	r.Get("/{id}", h.Get)

	enrich := http.Handler(http.HandlerFunc(h.EnrichAll))
	if enrichGuard != nil {
		enrich = enrichGuard(enrich)
	}
	r.Method(http.MethodPatch, "/update-all-with-year", enrich)

	return r
}

// pathParam reads a decoded route parameter. chi matches against RawPath when
// the request carries one, so its values are still percent-encoded then.
func pathParam(r *http.Request, name string) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if v := rctx.URLParam(name); v != "" {
			if r.URL.RawPath == "" {
				return v
			}
			if decoded, err := url.PathUnescape(v); err == nil {
				return decoded
			}
			return v
		}
	}
	return r.PathValue(name)
}
