package router

import (
	"net/http"
	"strconv"
)

// Params holds the path parameters resolved for a request, keyed by the
// parameter names declared in the route pattern.
type Params map[string]string

// Get returns the raw value for the named parameter, or "" when absent.
func (p Params) Get(name string) string {
	return p[name]
}

// Int returns the named parameter parsed as an int. Returns 0 when the
// parameter is absent or not numeric.
func (p Params) Int(name string) int {
	v, err := strconv.Atoi(p[name])
	if err != nil {
		return 0
	}
	return v
}

// Int64 returns the named parameter parsed as an int64. Returns 0 when the
// parameter is absent or not numeric.
func (p Params) Int64(name string) int64 {
	v, err := strconv.ParseInt(p[name], 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// Context carries per-request data through handler invocation and rendering.
// A fresh Context is built for every request and never shared.
type Context struct {
	// Request is the incoming HTTP request.
	Request *http.Request

	// CSRFToken is the token handlers embed in forms and hx-headers.
	CSRFToken string

	// Params holds the resolved path parameters.
	Params Params

	// body is the decoded request body, when the route declared one.
	body any
}

// CSRFTokenFunc extracts the CSRF token for a request. It is the adapter
// point between the router and whatever CSRF scheme the application uses.
type CSRFTokenFunc func(r *http.Request) string

// BodyOf returns the decoded request body as T. The route must have been
// registered with Body[T](); the second return is false when no body of
// that type was decoded.
func BodyOf[T any](c *Context) (T, bool) {
	v, ok := c.body.(T)
	return v, ok
}
