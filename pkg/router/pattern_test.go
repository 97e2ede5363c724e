package router

import (
	"reflect"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"bare root", "/", ""},
		{"empty", "", ""},
		{"leading slash", "/comments/", "comments/"},
		{"multiple leading slashes", "//comments/", "comments/"},
		{"already relative", "comments/", "comments/"},
		{"trailing slash kept", "comments", "comments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.expected {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestNormalizePathIdempotent(t *testing.T) {
	for _, path := range []string{"/", "", "/a/b/", "a/b/", "///x"} {
		once := NormalizePath(path)
		twice := NormalizePath(once)
		if once != twice {
			t.Errorf("NormalizePath not idempotent for %q: %q vs %q", path, once, twice)
		}
	}
}

func TestParsePattern(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		expected   string
		wantParams []string
	}{
		{"no params", "comments/", "comments/", nil},
		{"int converter", "comments/<int:comment_id>/", "comments/{comment_id:[0-9]+}/", []string{"comment_id"}},
		{"bare bracket", "users/<name>/", "users/{name}/", []string{"name"}},
		{"slug converter", "posts/<slug:slug>/", "posts/{slug:[-a-zA-Z0-9_]+}/", []string{"slug"}},
		{"unknown converter falls back", "files/<blob:name>/", "files/{name}/", []string{"name"}},
		{"brace syntax passes through", "comments/{comment_id}/", "comments/{comment_id}/", []string{"comment_id"}},
		{"brace with regex", "comments/{id:[0-9]+}/", "comments/{id:[0-9]+}/", []string{"id"}},
		{"multiple params in order", "users/<int:user_id>/comments/<int:comment_id>/",
			"users/{user_id:[0-9]+}/comments/{comment_id:[0-9]+}/", []string{"user_id", "comment_id"}},
		{"mixed syntaxes", "users/<int:user_id>/posts/{slug}/",
			"users/{user_id:[0-9]+}/posts/{slug}/", []string{"user_id", "slug"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, params := ParsePattern(tt.path)
			if pattern != tt.expected {
				t.Errorf("pattern = %q, want %q", pattern, tt.expected)
			}
			if !reflect.DeepEqual(params, tt.wantParams) {
				t.Errorf("params = %v, want %v", params, tt.wantParams)
			}
		})
	}
}

func TestParsePatternMalformedPassthrough(t *testing.T) {
	pattern, params := ParsePattern("comments/<int:/")
	if pattern != "comments/<int:/" {
		t.Errorf("malformed pattern was rewritten: %q", pattern)
	}
	if len(params) != 0 {
		t.Errorf("malformed pattern produced params: %v", params)
	}
}
