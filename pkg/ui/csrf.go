package ui

import (
	"github.com/danielkjellid/hue/el"
	"github.com/danielkjellid/hue/pkg/router"
)

// CSRFTokenInput renders a hidden input carrying the request's CSRF token.
// Required in any form posting back without htmx, which sends the token via
// the hx-headers set on the page body instead.
func CSRFTokenInput(c *router.Context) *el.Node {
	var token string
	if c != nil {
		token = c.CSRFToken
	}
	return el.Input(
		el.Type("hidden"),
		el.Name("csrfmiddlewaretoken"),
		el.Value(token),
	)
}
