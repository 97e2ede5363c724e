// Package render turns el.Node trees into HTML.
//
// The renderer escapes text and attribute values, emits void elements without
// closing tags, and sorts attributes for deterministic output. Raw nodes are
// written verbatim; use SanitizedRaw for untrusted markup.
package render
