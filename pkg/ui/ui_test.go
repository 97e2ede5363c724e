package ui

import (
	"strings"
	"testing"

	"github.com/danielkjellid/hue/el"
	"github.com/danielkjellid/hue/pkg/render"
	"github.com/danielkjellid/hue/pkg/router"
)

func renderOrFail(t *testing.T, node *el.Node) string {
	t.Helper()
	html, err := render.ToString(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return html
}

func TestButtonDefaults(t *testing.T) {
	html := renderOrFail(t, Button(ButtonProps{}, el.Text("Save")))

	for _, want := range []string{`type="button"`, "bg-primary", `tabindex="0"`, ">Save</button>"} {
		if !strings.Contains(html, want) {
			t.Errorf("button missing %q:\n%s", want, html)
		}
	}
	if strings.Contains(html, "disabled") {
		t.Errorf("default button should not be disabled:\n%s", html)
	}
}

func TestButtonVariants(t *testing.T) {
	tests := []struct {
		variant   ButtonVariant
		wantClass string
	}{
		{ButtonSecondary, "bg-secondary"},
		{ButtonOutline, "border-surface-200"},
		{ButtonPrimaryDestructive, "bg-destructive"},
		{ButtonTransparent, "bg-transparent"},
	}

	for _, tt := range tests {
		html := renderOrFail(t, Button(ButtonProps{Variant: tt.variant}))
		if !strings.Contains(html, tt.wantClass) {
			t.Errorf("%s button missing %q", tt.variant, tt.wantClass)
		}
	}
}

func TestButtonDisabled(t *testing.T) {
	html := renderOrFail(t, Button(ButtonProps{Disabled: true}))
	if !strings.Contains(html, "disabled") {
		t.Errorf("disabled button missing attribute:\n%s", html)
	}
}

func TestSubmitButton(t *testing.T) {
	html := renderOrFail(t, SubmitButton(ButtonProps{}, el.Text("Go")))
	if !strings.Contains(html, `type="submit"`) {
		t.Errorf("submit button missing type:\n%s", html)
	}
}

func TestStackDirections(t *testing.T) {
	v := renderOrFail(t, VStack(el.Div()))
	if !strings.Contains(v, "flex-col") {
		t.Errorf("VStack missing flex-col:\n%s", v)
	}

	h := renderOrFail(t, HStack(el.Div()))
	if !strings.Contains(h, "flex-row") {
		t.Errorf("HStack missing flex-row:\n%s", h)
	}
}

func TestLabelRequiredMarker(t *testing.T) {
	required := renderOrFail(t, Label("Email", LabelProps{For: "email"}))
	if !strings.Contains(required, `for="email"`) {
		t.Errorf("label missing for attribute:\n%s", required)
	}
	if !strings.Contains(required, "*") {
		t.Errorf("required label missing marker:\n%s", required)
	}

	optional := renderOrFail(t, Label("Nickname", LabelProps{Optional: true}))
	if strings.Contains(optional, "*") {
		t.Errorf("optional label has required marker:\n%s", optional)
	}
}

func TestTextInputWithLabel(t *testing.T) {
	html := renderOrFail(t, TextInput(InputProps{ID: "name", Name: "name", Label: "Name"}))

	for _, want := range []string{`type="text"`, `id="name"`, `name="name"`, "<label"} {
		if !strings.Contains(html, want) {
			t.Errorf("input missing %q:\n%s", want, html)
		}
	}
}

func TestHiddenInput(t *testing.T) {
	html := renderOrFail(t, HiddenInput("next", "/dashboard/"))
	for _, want := range []string{`type="hidden"`, `name="next"`, `value="/dashboard/"`} {
		if !strings.Contains(html, want) {
			t.Errorf("hidden input missing %q:\n%s", want, html)
		}
	}
}

func TestCallout(t *testing.T) {
	html := renderOrFail(t, Callout(CalloutProps{Variant: CalloutSuccess, Title: "Saved"}))

	if !strings.Contains(html, `role="status"`) {
		t.Errorf("callout missing role:\n%s", html)
	}
	if !strings.Contains(html, "Saved") {
		t.Errorf("callout missing title:\n%s", html)
	}
	if !strings.Contains(html, "<svg") {
		t.Errorf("callout missing icon:\n%s", html)
	}
}

func TestIcon(t *testing.T) {
	html := renderOrFail(t, Icon(IconCheck, "h-4", "w-4"))
	for _, want := range []string{"<svg", "h-4 w-4", "<path"} {
		if !strings.Contains(html, want) {
			t.Errorf("icon missing %q:\n%s", want, html)
		}
	}
}

func TestCSRFTokenInput(t *testing.T) {
	c := &router.Context{CSRFToken: "tok-1"}
	html := renderOrFail(t, CSRFTokenInput(c))

	for _, want := range []string{`type="hidden"`, `name="csrfmiddlewaretoken"`, `value="tok-1"`} {
		if !strings.Contains(html, want) {
			t.Errorf("csrf input missing %q:\n%s", want, html)
		}
	}

	// Nil context still renders a well-formed input.
	html = renderOrFail(t, CSRFTokenInput(nil))
	if !strings.Contains(html, `name="csrfmiddlewaretoken"`) {
		t.Errorf("nil-context csrf input malformed:\n%s", html)
	}
}

func TestMarkdown(t *testing.T) {
	html := renderOrFail(t, Markdown("# Title\n\nSome *emphasis*."))

	for _, want := range []string{"<h1", "Title", "<em>emphasis</em>", "prose"} {
		if !strings.Contains(html, want) {
			t.Errorf("markdown missing %q:\n%s", want, html)
		}
	}
}

func TestMarkdownSanitizesHTML(t *testing.T) {
	html := renderOrFail(t, Markdown(`hello <script>alert(1)</script>`))
	if strings.Contains(html, "<script>") {
		t.Errorf("script survived markdown rendering:\n%s", html)
	}
}
