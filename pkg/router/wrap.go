package router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielkjellid/hue/el"
	"github.com/danielkjellid/hue/pkg/render"
)

// Layout wraps a resolved render-unit in full page markup. Mount applies the
// layout to page routes only; fragment responses are always rendered bare.
type Layout func(c *Context, body *el.Node) *el.Node

// routeResult is the outcome of invoking a route's handler: either a raw
// pass-through, or rendered HTML plus a status code.
type routeResult struct {
	raw    *Raw
	html   string
	status int
}

// invoke runs the full per-request pipeline for a route: AJAX enforcement,
// body decoding, context construction, handler invocation, result
// interpretation, and rendering.
func invoke(ctx context.Context, rt *Route, req *http.Request, params Params, csrf CSRFTokenFunc, layout Layout) (routeResult, error) {
	// The AJAX check runs before anything else so fragment-only routes fail
	// fast on plain navigation, before any handler side effects.
	if rt.RequiresAJAX && !IsFragmentRequest(req) {
		return routeResult{}, ErrAJAXRequired
	}

	var body any
	if rt.body != nil {
		decoded, err := rt.body.decode(req)
		if err != nil {
			return routeResult{}, err
		}
		body = decoded
	}

	c := &Context{
		Request: req,
		Params:  params,
		body:    body,
	}
	if csrf != nil {
		c.CSRFToken = csrf(req)
	}

	result, err := rt.Handler(ctx, c)
	if err != nil {
		return routeResult{}, err
	}

	node, status, raw, err := interpretResult(result)
	if err != nil {
		return routeResult{}, err
	}
	if raw != nil {
		return routeResult{raw: raw}, nil
	}

	if !rt.RequiresAJAX && layout != nil {
		node = layout(c, node)
	}

	html, err := render.ToString(node)
	if err != nil {
		return routeResult{}, err
	}
	return routeResult{html: html, status: status}, nil
}

// interpretResult maps a handler's return value onto the response shape:
// a raw pass-through, a structured Response, or a plain render-unit with a
// default 200 status.
func interpretResult(result any) (*el.Node, int, *Raw, error) {
	switch v := result.(type) {
	case nil:
		return el.Nothing(), http.StatusOK, nil, nil
	case *Raw:
		return nil, 0, v, nil
	case *Response:
		return v.node(), v.status(), nil, nil
	case Response:
		return v.node(), v.status(), nil, nil
	case *el.Node:
		return v, http.StatusOK, nil, nil
	case []*el.Node:
		return el.Fragment(v), http.StatusOK, nil, nil
	case el.Component:
		return v.Render(), http.StatusOK, nil, nil
	case string:
		return el.Text(v), http.StatusOK, nil, nil
	default:
		return nil, 0, nil, fmt.Errorf("unsupported handler result type %T", result)
	}
}
