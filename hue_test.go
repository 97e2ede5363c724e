package hue_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielkjellid/hue"
	"github.com/danielkjellid/hue/el"
	"github.com/danielkjellid/hue/pkg/router"
)

type createCommentBody struct {
	Text string `json:"text" hue:"required"`
}

func commentsView(t *testing.T) http.Handler {
	t.Helper()

	routes := hue.NewRouter()
	routes.FragmentGet("comments/", func(ctx context.Context, c *hue.Context) (any, error) {
		return el.Ul(el.Li(el.Text("first comment"))), nil
	}, hue.WithName("comments"))
	routes.FragmentPost("comments/", func(ctx context.Context, c *hue.Context) (any, error) {
		body, _ := hue.BodyOf[createCommentBody](c)
		return &hue.Response{
			Component:  el.Li(el.Text(body.Text)),
			Target:     "comments",
			StatusCode: http.StatusCreated,
		}, nil
	}, router.Body[createCommentBody]())
	routes.FragmentDelete("comments/<int:comment_id>/", func(ctx context.Context, c *hue.Context) (any, error) {
		id := c.Params.Int("comment_id")
		if id != 42 {
			return nil, nil
		}
		return el.Text("deleted"), nil
	})

	v := &hue.View{
		Title:  "Comments",
		Router: routes,
		Index: func(ctx context.Context, c *hue.Context) (any, error) {
			return el.Div(el.ID("comments"), el.H1(el.Text("Comments"))), nil
		},
	}
	return v.Handler()
}

func TestIndexRendersFullPage(t *testing.T) {
	srv := httptest.NewServer(commentsView(t))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	html := string(body)

	for _, want := range []string{"<!DOCTYPE html>", "<title>Comments</title>", "htmx.org", "x-data", `<h1>Comments</h1>`} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestFragmentRequiresAJAX(t *testing.T) {
	srv := httptest.NewServer(commentsView(t))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/comments/")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("plain GET status = %d, want 400", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/comments/", nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("AJAX GET status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if strings.Contains(string(body), "<!DOCTYPE html>") {
		t.Error("fragment response included the page scaffold")
	}
	if !strings.Contains(string(body), "first comment") {
		t.Errorf("fragment body = %s", body)
	}
}

func TestFragmentPostWithBody(t *testing.T) {
	srv := httptest.NewServer(commentsView(t))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/comments/", strings.NewReader(`{"text":"hello"}`))
	req.Header.Set("X-Alpine-Request", "true")
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `id="comments"`) {
		t.Errorf("targeted response missing wrapper: %s", body)
	}
}

func TestFragmentPostValidationError(t *testing.T) {
	srv := httptest.NewServer(commentsView(t))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/comments/", strings.NewReader(`{}`))
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"text"`) {
		t.Errorf("error body missing field name: %s", body)
	}
}

func TestPathParamDispatch(t *testing.T) {
	srv := httptest.NewServer(commentsView(t))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/comments/42/", nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "deleted") {
		t.Errorf("body = %s, want deleted", body)
	}

	// Non-numeric id must not match the int-constrained pattern.
	req, _ = http.NewRequest(http.MethodDelete, srv.URL+"/comments/abc/", nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		t.Error("non-numeric id matched int pattern")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := httptest.NewServer(commentsView(t))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/comments/", nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
	allow := resp.Header.Get("Allow")
	if !strings.Contains(allow, "GET") || !strings.Contains(allow, "POST") {
		t.Errorf("Allow = %q, want GET and POST", allow)
	}
}

func TestRedirectPassthrough(t *testing.T) {
	routes := hue.NewRouter()
	routes.Post("login/", func(ctx context.Context, c *hue.Context) (any, error) {
		return hue.Redirect("/"), nil
	})

	v := &hue.View{Title: "Login", Router: routes}
	srv := httptest.NewServer(v.Handler())
	defer srv.Close()

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Post(srv.URL+"/login/", "application/x-www-form-urlencoded", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", resp.StatusCode)
	}
	if got := resp.Header.Get("Location"); got != "/" {
		t.Errorf("Location = %q, want /", got)
	}
}
