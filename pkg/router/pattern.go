package router

import (
	"regexp"
	"strings"
)

// bracketParam matches Django-style parameters: <name> or <type:name>.
var bracketParam = regexp.MustCompile(`<(?:([a-zA-Z_][a-zA-Z0-9_]*):)?([a-zA-Z_][a-zA-Z0-9_]*)>`)

// braceParam matches chi-style parameters: {name} or {name:regex}.
var braceParam = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)(?::[^}]*)?\}`)

// paramPatterns maps bracket converter names to chi regex constraints.
// An unknown converter falls back to the default single-segment match.
var paramPatterns = map[string]string{
	"int":  "[0-9]+",
	"slug": "[-a-zA-Z0-9_]+",
	"uuid": "[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}",
	"path": ".+",
}

// NormalizePath strips leading slashes from a path so route paths are stored
// relative to the mount point. The trailing slash is significant and kept.
// The bare root "/" normalizes to "".
func NormalizePath(path string) string {
	return strings.TrimLeft(path, "/")
}

// ParsePattern rewrites a path template into a chi-native pattern and
// extracts the parameter names in order of first appearance.
//
// Both Django-style bracket parameters (<int:comment_id>) and chi-style brace
// parameters ({comment_id}) are accepted:
//
//	ParsePattern("comments/<int:comment_id>/")
//	// => "comments/{comment_id:[0-9]+}/", []string{"comment_id"}
//
// Malformed parameter syntax is passed through untouched rather than
// rejected; chi reports the bad pattern at mount time.
func ParsePattern(path string) (string, []string) {
	rewritten := bracketParam.ReplaceAllStringFunc(path, func(match string) string {
		groups := bracketParam.FindStringSubmatch(match)
		converter, name := groups[1], groups[2]
		if pattern, ok := paramPatterns[converter]; ok {
			return "{" + name + ":" + pattern + "}"
		}
		return "{" + name + "}"
	})

	// After the rewrite every parameter is in brace syntax, so a single scan
	// yields the names in order of first appearance.
	var names []string
	for _, groups := range braceParam.FindAllStringSubmatch(rewritten, -1) {
		names = append(names, groups[1])
	}

	return rewritten, names
}
