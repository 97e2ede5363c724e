// Package hue provides the public API for the hue component library.
//
// This is the recommended import for most applications:
//
//	import "github.com/danielkjellid/hue"
//
// Usage:
//
//	routes := hue.NewRouter()
//	routes.Get("", Index)
//	routes.FragmentGet("comments/", CommentList, hue.WithName("comments"))
//
//	v := &hue.View{Title: "Dashboard", Router: routes}
//	http.ListenAndServe(":8000", v.Handler())
package hue

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/danielkjellid/hue/internal/config"
	"github.com/danielkjellid/hue/internal/dev"
	"github.com/danielkjellid/hue/pkg/router"
	"github.com/danielkjellid/hue/pkg/view"
)

// Router collects routes for a view.
type Router = router.Router

// Route is a single registered route.
type Route = router.Route

// Context carries per-request data into handlers.
type Context = router.Context

// Params holds extracted path parameters.
type Params = router.Params

// HandlerFunc is the signature route handlers implement.
type HandlerFunc = router.HandlerFunc

// Response is a structured handler result with an optional target wrapper.
type Response = router.Response

// Raw is a passthrough handler result sent to the client unmodified.
type Raw = router.Raw

// FieldError describes a single body validation failure.
type FieldError = router.FieldError

// BodyValidationError aggregates body validation failures.
type BodyValidationError = router.BodyValidationError

// View ties a router to a document layout.
type View = view.View

// NewRouter creates an empty Router.
var NewRouter = router.New

// WithName names a route at registration time.
var WithName = router.WithName

// Redirect builds a raw redirect result.
var Redirect = router.Redirect

// RedirectWithStatus builds a raw redirect with an explicit status code.
var RedirectWithStatus = router.RedirectWithStatus

// ErrAJAXRequired is returned when a fragment route receives a plain
// request.
var ErrAJAXRequired = router.ErrAJAXRequired

// IsFragmentRequest reports whether the request came from htmx or Alpine.
var IsFragmentRequest = router.IsFragmentRequest

// Body declares the request body type for a route.
func Body[T any]() router.RouteOption {
	return router.Body[T]()
}

// BodyOf returns the decoded request body for a route declared with Body.
func BodyOf[T any](c *Context) (T, bool) {
	return router.BodyOf[T](c)
}

// InDev reports whether the process was started by the hue dev command.
func InDev() bool {
	return os.Getenv("HUE_DEV") == "1"
}

// Serve runs handler on addr. When started by the hue dev command it wraps
// the handler with the development server instead: live reload, file
// watching, and automatic CSS rebuilds.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	if !InDev() {
		srv := &http.Server{Addr: addr, Handler: handler}
		go func() {
			<-ctx.Done()
			srv.Close()
		}()
		return srv.ListenAndServe()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	return dev.NewServer(cfg, handler, log.Default()).Run(ctx)
}
