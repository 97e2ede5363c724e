package router

import (
	"net/http"

	"github.com/danielkjellid/hue/el"
)

// Response is the structured handler result. It carries a render-unit plus an
// optional DOM target and status code, enabling partial-DOM merges by id and
// non-200 statuses from handlers:
//
//	return &router.Response{
//	    Component:  ui.Callout(ui.CalloutSuccess, "Saved"),
//	    Target:     "flash",
//	    StatusCode: http.StatusCreated,
//	}, nil
type Response struct {
	// Component is the render-unit for the response body.
	Component *el.Node

	// Target, when set, wraps the rendered component in a container with this
	// id so the client can merge it into the matching DOM element.
	Target string

	// StatusCode is the HTTP status. Zero means 200.
	StatusCode int
}

// status returns the effective status code.
func (r *Response) status() int {
	if r.StatusCode == 0 {
		return http.StatusOK
	}
	return r.StatusCode
}

// node returns the render-unit, wrapped in the target container when set.
func (r *Response) node() *el.Node {
	if r.Target == "" {
		return r.Component
	}
	return el.Div(el.ID(r.Target), r.Component)
}

// Raw is a pass-through handler result. It bypasses rendering entirely and is
// written to the response as-is. Use it for redirects and non-HTML payloads.
type Raw struct {
	// StatusCode is the HTTP status. Zero means 200.
	StatusCode int

	// Header holds extra response headers.
	Header http.Header

	// Body is written verbatim.
	Body []byte
}

// Redirect builds a pass-through redirect result with a 303 See Other status,
// the conventional status for post-action redirects in AJAX-driven UIs.
func Redirect(url string) *Raw {
	header := make(http.Header, 1)
	header.Set("Location", url)
	return &Raw{StatusCode: http.StatusSeeOther, Header: header}
}

// RedirectWithStatus builds a pass-through redirect with an explicit status.
func RedirectWithStatus(url string, status int) *Raw {
	raw := Redirect(url)
	raw.StatusCode = status
	return raw
}

// write emits the raw result onto the response writer.
func (r *Raw) write(w http.ResponseWriter) {
	for key, values := range r.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	status := r.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if len(r.Body) > 0 {
		w.Write(r.Body)
	}
}
