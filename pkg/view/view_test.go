package view

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielkjellid/hue/el"
	"github.com/danielkjellid/hue/pkg/render"
	"github.com/danielkjellid/hue/pkg/router"
)

func TestDocumentScaffold(t *testing.T) {
	v := &View{Title: "Dashboard", CSSURL: "/static/styles.css"}
	html, err := render.ToString(v.Document(&router.Context{CSRFToken: "tok"}, el.H1("Hello")))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>Dashboard</title>",
		`charset="utf-8"`,
		`name="viewport"`,
		htmxScriptURL,
		alpineScriptURL,
		`href="/static/styles.css"`,
		"<h1>Hello</h1>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing %q:\n%s", want, html)
		}
	}
}

func TestDocumentOmitsStylesheetWithoutCSSURL(t *testing.T) {
	v := &View{Title: "Plain"}
	html, err := render.ToString(v.Document(nil, el.Div()))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<link") {
		t.Errorf("document has stylesheet link without CSSURL:\n%s", html)
	}
}

func TestDocumentCSRFHeader(t *testing.T) {
	v := &View{}
	html, err := render.ToString(v.Document(&router.Context{CSRFToken: "abc123"}, el.Div()))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "X-CSRFToken") || !strings.Contains(html, "abc123") {
		t.Errorf("body missing hx-headers csrf token:\n%s", html)
	}
}

func TestTitleFactory(t *testing.T) {
	v := &View{
		Title:        "Settings",
		TitleFactory: func(title string) string { return fmt.Sprintf("%s | Acme", title) },
	}
	if got := v.documentTitle(); got != "Settings | Acme" {
		t.Errorf("documentTitle() = %q, want %q", got, "Settings | Acme")
	}
}

func TestMergedXDataViewWins(t *testing.T) {
	v := &View{XData: map[string]any{"theme": "dark", "open": false}}

	merged := v.mergedXData()
	if merged["theme"] != "dark" {
		t.Errorf("view theme should win, got %v", merged["theme"])
	}
	if merged["open"] != false {
		t.Errorf("view key missing, got %v", merged["open"])
	}

	// No view data keeps the base scope.
	base := (&View{}).mergedXData()
	if base["theme"] != "light" {
		t.Errorf("base theme = %v, want light", base["theme"])
	}
}

func TestHandlerServesIndexAsPage(t *testing.T) {
	v := &View{
		Title: "Home",
		Index: func(ctx context.Context, c *router.Context) (any, error) {
			return el.H1("Welcome"), nil
		},
	}

	rec := httptest.NewRecorder()
	v.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"<!DOCTYPE html>", "<title>Home</title>", "<h1>Welcome</h1>"} {
		if !strings.Contains(body, want) {
			t.Errorf("index page missing %q:\n%s", want, body)
		}
	}
}

func TestHandlerFragmentSkipsScaffold(t *testing.T) {
	r := router.New()
	r.FragmentGet("items/", func(ctx context.Context, c *router.Context) (any, error) {
		return el.Ul(el.Li("one")), nil
	})
	v := &View{Title: "Items", Router: r}

	req := httptest.NewRequest(http.MethodGet, "/items/", nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	rec := httptest.NewRecorder()
	v.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Errorf("fragment wrapped in document scaffold:\n%s", body)
	}
	if !strings.Contains(body, "<li>one</li>") {
		t.Errorf("fragment body missing content:\n%s", body)
	}
}
