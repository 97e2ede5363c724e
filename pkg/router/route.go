package router

import (
	"context"
	"net/http"
)

// HandlerFunc is a route handler.
//
// The returned value may be a render-unit (*el.Node, el.Component, []*el.Node
// or a plain string), a *Response for custom status codes and DOM-merge
// targeting, or a *Raw to bypass rendering entirely (redirects). A returned
// error propagates to the error handler configured at mount time, except for
// ErrAJAXRequired and *BodyValidationError which Mount maps to fixed statuses.
type HandlerFunc func(ctx context.Context, c *Context) (any, error)

// Route is a single registered route. Routes are immutable once registered.
type Route struct {
	// Method is the HTTP verb, uppercased.
	Method string

	// Path is the normalized, chi-native path pattern relative to the mount
	// point. The index route is the empty string.
	Path string

	// Name optionally identifies the route.
	Name string

	// Handler is the registered handler.
	Handler HandlerFunc

	// PathParams lists the parameter names extracted from the path template,
	// in order of first appearance.
	PathParams []string

	// RequiresAJAX marks fragment routes that refuse plain navigation.
	RequiresAJAX bool

	// body declares the request body shape, when the route accepts one.
	body bodyDecoder
}

// RouteOption configures a route at registration time.
type RouteOption func(*Route)

// WithName names the route.
func WithName(name string) RouteOption {
	return func(rt *Route) {
		rt.Name = name
	}
}

// Router owns the ordered route table for a view. Registration happens once,
// at setup time; the table is read-only afterwards, so concurrent request
// handling needs no synchronization.
type Router struct {
	routes []*Route
}

// New creates an empty Router.
func New() *Router {
	return &Router{}
}

// On registers a handler for the given method and path template and returns
// the created Route. Registering the same method and path twice produces two
// distinct entries; dispatch picks the first match in registration order.
func (r *Router) On(method, path string, requiresAJAX bool, handler HandlerFunc, opts ...RouteOption) *Route {
	pattern, params := ParsePattern(NormalizePath(path))

	rt := &Route{
		Method:       method,
		Path:         pattern,
		Handler:      handler,
		PathParams:   params,
		RequiresAJAX: requiresAJAX,
	}
	for _, opt := range opts {
		opt(rt)
	}

	r.routes = append(r.routes, rt)
	return rt
}

// Get registers a full page GET route.
func (r *Router) Get(path string, handler HandlerFunc, opts ...RouteOption) *Route {
	return r.On(http.MethodGet, path, false, handler, opts...)
}

// Post registers a full page POST route.
func (r *Router) Post(path string, handler HandlerFunc, opts ...RouteOption) *Route {
	return r.On(http.MethodPost, path, false, handler, opts...)
}

// FragmentGet registers an AJAX-only GET route.
func (r *Router) FragmentGet(path string, handler HandlerFunc, opts ...RouteOption) *Route {
	return r.On(http.MethodGet, path, true, handler, opts...)
}

// FragmentPost registers an AJAX-only POST route.
func (r *Router) FragmentPost(path string, handler HandlerFunc, opts ...RouteOption) *Route {
	return r.On(http.MethodPost, path, true, handler, opts...)
}

// FragmentPut registers an AJAX-only PUT route.
func (r *Router) FragmentPut(path string, handler HandlerFunc, opts ...RouteOption) *Route {
	return r.On(http.MethodPut, path, true, handler, opts...)
}

// FragmentPatch registers an AJAX-only PATCH route.
func (r *Router) FragmentPatch(path string, handler HandlerFunc, opts ...RouteOption) *Route {
	return r.On(http.MethodPatch, path, true, handler, opts...)
}

// FragmentDelete registers an AJAX-only DELETE route.
func (r *Router) FragmentDelete(path string, handler HandlerFunc, opts ...RouteOption) *Route {
	return r.On(http.MethodDelete, path, true, handler, opts...)
}

// Routes returns a copy of the route table in registration order.
func (r *Router) Routes() []*Route {
	out := make([]*Route, len(r.routes))
	copy(out, r.routes)
	return out
}
