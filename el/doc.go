// Package el provides the declarative element DSL for hue.
//
// Elements are built as plain Go values and rendered to HTML by
// github.com/danielkjellid/hue/pkg/render:
//
//	el.Div(
//	    el.Class("card"),
//	    el.H1("Albums"),
//	    el.P(el.Textf("%d albums", count)),
//	)
//
// Constructors accept attributes, child nodes, components, and strings in any
// order. Nil arguments are ignored, which keeps conditional markup terse:
//
//	el.Div(
//	    el.If(user != nil, el.Span(userName)),
//	)
//
// The package also carries htmx (Hx*) and Alpine.js (X*) attribute helpers,
// since hue pages drive partial updates through those two libraries.
package el
