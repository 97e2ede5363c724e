package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielkjellid/hue/el"
)

func fragmentRoute(handler HandlerFunc, opts ...RouteOption) *Route {
	r := New()
	return r.FragmentGet("things/", handler, opts...)
}

func TestInvokeAJAXCheckBeforeHandler(t *testing.T) {
	called := false
	rt := fragmentRoute(func(ctx context.Context, c *Context) (any, error) {
		called = true
		return nil, nil
	})

	req := httptest.NewRequest("GET", "/things/", nil)
	_, err := invoke(context.Background(), rt, req, nil, nil, nil)

	if err != ErrAJAXRequired {
		t.Fatalf("err = %v, want ErrAJAXRequired", err)
	}
	if called {
		t.Error("handler ran despite failed AJAX check")
	}
}

func TestInvokeBodyDecodeBeforeHandler(t *testing.T) {
	called := false
	r := New()
	rt := r.FragmentPost("things/", func(ctx context.Context, c *Context) (any, error) {
		called = true
		return nil, nil
	}, Body[commentBody]())

	req := httptest.NewRequest("POST", "/things/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	_, err := invoke(context.Background(), rt, req, nil, nil, nil)
	if _, ok := err.(*BodyValidationError); !ok {
		t.Fatalf("err = %v, want BodyValidationError", err)
	}
	if called {
		t.Error("handler ran despite body validation failure")
	}
}

func TestInvokeAppliesLayoutToPageRoutesOnly(t *testing.T) {
	layout := func(c *Context, body *el.Node) *el.Node {
		return el.Div(el.Class("layout"), body)
	}
	handler := func(ctx context.Context, c *Context) (any, error) {
		return el.Span(el.Text("content")), nil
	}

	r := New()
	page := r.Get("page/", handler)
	fragment := r.FragmentGet("frag/", handler)

	pageReq := httptest.NewRequest("GET", "/page/", nil)
	result, err := invoke(context.Background(), page, pageReq, nil, nil, layout)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(result.html, `class="layout"`) {
		t.Errorf("page html missing layout: %s", result.html)
	}

	fragReq := httptest.NewRequest("GET", "/frag/", nil)
	fragReq.Header.Set("X-Requested-With", "XMLHttpRequest")
	result, err = invoke(context.Background(), fragment, fragReq, nil, nil, layout)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(result.html, `class="layout"`) {
		t.Errorf("fragment html includes layout: %s", result.html)
	}
}

func TestInvokeCSRFTokenOnContext(t *testing.T) {
	rt := New().Get("page/", func(ctx context.Context, c *Context) (any, error) {
		return el.Text(c.CSRFToken), nil
	})

	req := httptest.NewRequest("GET", "/page/", nil)
	result, err := invoke(context.Background(), rt, req, nil, func(*http.Request) string {
		return "token-123"
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.html != "token-123" {
		t.Errorf("html = %q", result.html)
	}
}

func TestInterpretResult(t *testing.T) {
	comp := el.Func(func() *el.Node { return el.Span(el.Text("c")) })

	tests := []struct {
		name       string
		result     any
		wantHTML   string
		wantStatus int
	}{
		{"nil renders nothing", nil, "", http.StatusOK},
		{"node", el.Div(), "<div></div>", http.StatusOK},
		{"node slice", []*el.Node{el.Div(), el.Span()}, "<div></div><span></span>", http.StatusOK},
		{"component", comp, "<span>c</span>", http.StatusOK},
		{"string becomes text", "a < b", "a &lt; b", http.StatusOK},
		{"response with status", &Response{Component: el.Div(), StatusCode: 201}, "<div></div>", 201},
		{"response value", Response{Component: el.Div()}, "<div></div>", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := New().Get("x/", func(ctx context.Context, c *Context) (any, error) {
				return tt.result, nil
			})
			req := httptest.NewRequest("GET", "/x/", nil)
			result, err := invoke(context.Background(), rt, req, nil, nil, nil)
			if err != nil {
				t.Fatal(err)
			}
			if result.html != tt.wantHTML {
				t.Errorf("html = %q, want %q", result.html, tt.wantHTML)
			}
			if result.status != tt.wantStatus {
				t.Errorf("status = %d, want %d", result.status, tt.wantStatus)
			}
		})
	}
}

func TestInterpretResultUnsupportedType(t *testing.T) {
	rt := New().Get("x/", func(ctx context.Context, c *Context) (any, error) {
		return 42, nil
	})
	req := httptest.NewRequest("GET", "/x/", nil)
	if _, err := invoke(context.Background(), rt, req, nil, nil, nil); err == nil {
		t.Fatal("expected error for unsupported result type")
	}
}

func TestInvokeRawBypassesLayout(t *testing.T) {
	layout := func(c *Context, body *el.Node) *el.Node {
		t.Error("layout ran for raw result")
		return body
	}
	rt := New().Post("login/", func(ctx context.Context, c *Context) (any, error) {
		return Redirect("/"), nil
	})

	req := httptest.NewRequest("POST", "/login/", nil)
	result, err := invoke(context.Background(), rt, req, nil, nil, layout)
	if err != nil {
		t.Fatal(err)
	}
	if result.raw == nil {
		t.Fatal("raw result was not passed through")
	}
	if result.raw.StatusCode != http.StatusSeeOther {
		t.Errorf("StatusCode = %d, want 303", result.raw.StatusCode)
	}
}
