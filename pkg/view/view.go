package view

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/danielkjellid/hue/el"
	"github.com/danielkjellid/hue/pkg/router"
)

// Script URLs for the client-side libraries the scaffold loads.
const (
	htmxScriptURL   = "https://unpkg.com/htmx.org@2.0.2"
	alpineScriptURL = "https://cdn.jsdelivr.net/npm/alpinejs@3.x.x/dist/cdn.min.js"
)

// baseXData is the Alpine scope every page starts from. A view's own XData
// is merged on top, with the view winning on key conflicts.
var baseXData = map[string]any{"theme": "light"}

// TitleFactory formats a view title into the document title, e.g.
// appending a site suffix.
type TitleFactory func(title string) string

// View describes one server-rendered page and its fragment routes.
type View struct {
	// Title is the page title, passed through TitleFactory.
	Title string

	// XData extends the Alpine x-data scope on the page body.
	XData map[string]any

	// CSSURL is the stylesheet link href.
	CSSURL string

	// TitleFactory formats the document title. Nil means the title is used
	// as-is.
	TitleFactory TitleFactory

	// Index handles GET on the view's base path. Always bound as a page
	// route, even though every other fragment route requires AJAX.
	Index router.HandlerFunc

	// Router holds the view's fragment and page routes.
	Router *router.Router
}

// Mount binds the view onto a chi.Router: the index handler at the bare base
// path, then every registered route, with page routes wrapped in the document
// scaffold.
func (v *View) Mount(mux chi.Router, opts ...router.MountOption) {
	r := v.Router
	if r == nil {
		r = router.New()
	}

	prepend := []router.MountOption{router.WithLayout(v.Layout())}
	if v.Index != nil {
		prepend = append(prepend, router.WithIndex(v.Index))
	}
	router.Mount(mux, r, append(prepend, opts...)...)
}

// Layout returns the page layout wrapping a body in the document scaffold.
func (v *View) Layout() router.Layout {
	return func(c *router.Context, body *el.Node) *el.Node {
		return v.Document(c, body)
	}
}

// Document builds the full page tree around the given body content.
func (v *View) Document(c *router.Context, body *el.Node) *el.Node {
	var csrfToken string
	if c != nil {
		csrfToken = c.CSRFToken
	}

	return el.Fragment(
		el.Raw("<!DOCTYPE html>"),
		el.Html(
			el.Lang("en"),
			el.Head(
				el.Title(v.documentTitle()),
				el.Meta(el.Attribute("charset", "utf-8")),
				el.Meta(el.Name("viewport"), el.Attribute("content", "width=device-width, initial-scale=1")),
				el.Script(el.Src(htmxScriptURL)),
				el.Script(el.Src(alpineScriptURL), el.Defer()),
				el.If(v.CSSURL != "", el.Link(el.Rel("stylesheet"), el.Href(v.CSSURL), el.Type("text/css"))),
			),
			el.Body(
				el.XData(v.mergedXData()),
				el.XBind("data-theme", "theme"),
				el.Class("min-h-screen bg-background relative"),
				el.HxHeaders(map[string]string{"X-CSRFToken": csrfToken}),
				body,
			),
		),
	)
}

// Handler returns the view mounted on a standalone chi router, for use as a
// plain http.Handler.
func (v *View) Handler(opts ...router.MountOption) http.Handler {
	mux := chi.NewRouter()
	v.Mount(mux, opts...)
	return mux
}

// documentTitle runs the title through the factory when one is set.
func (v *View) documentTitle() string {
	if v.TitleFactory != nil {
		return v.TitleFactory(v.Title)
	}
	return v.Title
}

// mergedXData merges the base x-data scope with the view's own, the view
// winning on conflicts.
func (v *View) mergedXData() map[string]any {
	merged := make(map[string]any, len(baseXData)+len(v.XData))
	for key, value := range baseXData {
		merged[key] = value
	}
	for key, value := range v.XData {
		merged[key] = value
	}
	return merged
}
