package el

import (
	"sort"
	"strings"
)

// ClassNames builds a class string from mixed arguments, in the spirit of the
// JavaScript classnames library. Arguments can be strings, []string, or
// map[string]bool (class included when the value is true). Nil and empty
// values are skipped.
//
//	ClassNames("btn", map[string]bool{"btn-primary": primary}, extra)
func ClassNames(args ...any) string {
	var classes []string

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case string:
			if v != "" {
				classes = append(classes, v)
			}
		case []string:
			for _, c := range v {
				if c != "" {
					classes = append(classes, c)
				}
			}
		case map[string]bool:
			// Sort for deterministic output; map iteration order is random.
			keys := make([]string, 0, len(v))
			for c := range v {
				keys = append(keys, c)
			}
			sort.Strings(keys)
			for _, c := range keys {
				if v[c] && c != "" {
					classes = append(classes, c)
				}
			}
		}
	}

	return strings.Join(classes, " ")
}

// ClassesIf maps every class to the same condition. Handy when a long list of
// classes toggles together and an inline map literal would be unreadable.
func ClassesIf(condition bool, classes ...string) map[string]bool {
	m := make(map[string]bool, len(classes))
	for _, c := range classes {
		m[c] = condition
	}
	return m
}

// ClassesIfElse includes ifTrue classes when condition holds and ifFalse
// classes otherwise. Avoids calling ClassesIf twice with negated conditions.
func ClassesIfElse(condition bool, ifTrue, ifFalse []string) map[string]bool {
	m := make(map[string]bool, len(ifTrue)+len(ifFalse))
	for _, c := range ifTrue {
		m[c] = condition
	}
	for _, c := range ifFalse {
		m[c] = !condition
	}
	return m
}
