package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// CSRFCookieName is the cookie the default CSRF token adapter reads. The
// middleware package issues this cookie.
const CSRFCookieName = "hue_csrftoken"

// DefaultCSRFToken resolves the CSRF token from the request cookie. Mount
// uses it unless WithCSRFToken overrides the adapter.
func DefaultCSRFToken(r *http.Request) string {
	cookie, err := r.Cookie(CSRFCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// ErrorHandler handles errors that are not part of the router's own failure
// vocabulary. AJAX and body-validation failures never reach it.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// MountOption configures Mount.
type MountOption func(*mountConfig)

type mountConfig struct {
	csrf       CSRFTokenFunc
	layout     Layout
	errHandler ErrorHandler
	index      HandlerFunc
}

// WithLayout sets the full page layout applied to page (non-AJAX) routes.
func WithLayout(layout Layout) MountOption {
	return func(c *mountConfig) {
		c.layout = layout
	}
}

// WithCSRFToken overrides the CSRF token adapter.
func WithCSRFToken(fn CSRFTokenFunc) MountOption {
	return func(c *mountConfig) {
		c.csrf = fn
	}
}

// WithErrorHandler overrides the handler for unexpected errors. The default
// responds with a plain 500.
func WithErrorHandler(fn ErrorHandler) MountOption {
	return func(c *mountConfig) {
		c.errHandler = fn
	}
}

// WithIndex binds a handler for GET on the bare base path. The index route is
// always a page route, regardless of how the rest of the table is registered,
// and takes dispatch precedence over any other route bound to the base path.
func WithIndex(handler HandlerFunc) MountOption {
	return func(c *mountConfig) {
		c.index = handler
	}
}

// Mount binds the router's table onto a chi.Router. Routes sharing an
// identical path are grouped into a single endpoint whose dispatch function
// selects the first method-matching route in registration order; when no
// method matches, the response is 405 with an Allow header.
func Mount(mux chi.Router, r *Router, opts ...MountOption) {
	cfg := mountConfig{
		csrf: DefaultCSRFToken,
		errHandler: func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	routes := r.routes
	if cfg.index != nil {
		indexRoute := &Route{
			Method:  http.MethodGet,
			Path:    "",
			Name:    "index",
			Handler: cfg.index,
		}
		routes = append([]*Route{indexRoute}, routes...)
	}

	// Group routes by path, preserving first-appearance order.
	var order []string
	groups := make(map[string][]*Route)
	for _, rt := range routes {
		if _, seen := groups[rt.Path]; !seen {
			order = append(order, rt.Path)
		}
		groups[rt.Path] = append(groups[rt.Path], rt)
	}

	for _, path := range order {
		candidates := groups[path]
		mux.Handle("/"+path, dispatchFunc(candidates, cfg))
	}
}

// dispatchFunc builds the single endpoint serving all routes bound to one
// path.
func dispatchFunc(candidates []*Route, cfg mountConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		rt := matchMethod(candidates, req.Method)
		if rt == nil {
			w.Header().Set("Allow", strings.Join(allowedMethods(candidates), ", "))
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		params := make(Params, len(rt.PathParams))
		for _, name := range rt.PathParams {
			params[name] = chi.URLParam(req, name)
		}

		result, err := invoke(req.Context(), rt, req, params, cfg.csrf, cfg.layout)
		if err != nil {
			respondError(w, req, err, cfg)
			return
		}

		if result.raw != nil {
			result.raw.write(w)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(result.status)
		w.Write([]byte(result.html))
	}
}

// matchMethod returns the first route matching the method, in registration
// order. First-registration-order wins for duplicate method+path entries.
func matchMethod(candidates []*Route, method string) *Route {
	for _, rt := range candidates {
		if rt.Method == method {
			return rt
		}
	}
	return nil
}

// allowedMethods lists the distinct methods bound to a path group.
func allowedMethods(candidates []*Route) []string {
	var methods []string
	seen := make(map[string]bool, len(candidates))
	for _, rt := range candidates {
		if !seen[rt.Method] {
			seen[rt.Method] = true
			methods = append(methods, rt.Method)
		}
	}
	return methods
}

// respondError translates the router's two failure kinds into their fixed
// statuses and delegates everything else to the configured error handler.
func respondError(w http.ResponseWriter, req *http.Request, err error, cfg mountConfig) {
	if errors.Is(err, ErrAJAXRequired) {
		http.Error(w, ErrAJAXRequired.Error(), http.StatusBadRequest)
		return
	}

	var validationErr *BodyValidationError
	if errors.As(err, &validationErr) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string][]FieldError{"errors": validationErr.Errors})
		return
	}

	cfg.errHandler(w, req, err)
}
