package tailwind

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/danielkjellid/hue/internal/errors"
)

// MatchContent expands the configured content globs relative to dir and
// returns the matching files. These are the files Tailwind scans for class
// names; the dev server also watches them for rebuild triggers.
func MatchContent(dir string, globs []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, glob := range globs {
		matches, err := doublestar.FilepathGlob(filepath.Join(dir, glob))
		if err != nil {
			return nil, errors.Newf(errors.CategoryTailwind, "invalid content glob %q: %v", glob, err)
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				files = append(files, match)
			}
		}
	}
	return files, nil
}

// checkContent verifies the content globs match at least one file, so a
// misconfigured project fails loudly instead of producing an empty
// stylesheet.
func checkContent(cfg BuildConfig) error {
	if len(cfg.Content) == 0 {
		return nil
	}

	files, err := MatchContent(cfg.ProjectDir, cfg.Content)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("H203").
			WithDetail("No files matched the configured content globs, the build would produce an empty stylesheet").
			WithSuggestion("Check the tailwind.content patterns in hue.yaml")
	}
	return nil
}
