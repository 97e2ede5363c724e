// Package view ties a router to full page rendering.
//
// A View owns a Router plus the page chrome: title, stylesheet URL, and the
// Alpine x-data scope. Mounting a view binds its index handler as the
// non-AJAX root route and wraps every page route's output in the document
// scaffold (htmx + Alpine scripts, CSRF headers, stylesheet link). Fragment
// routes render bare, ready for DOM swaps.
package view
