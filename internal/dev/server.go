// Package dev provides the development server: live reload over WebSocket,
// a file watcher, and automatic CSS rebuilds.
package dev

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielkjellid/hue/internal/config"
	"github.com/danielkjellid/hue/internal/errors"
	"github.com/danielkjellid/hue/internal/tailwind"
)

// Server wraps an application handler with development tooling. It serves
// the app on the configured dev address, watches the project tree, rebuilds
// CSS when sources change, and pushes reload messages to connected
// browsers.
type Server struct {
	cfg     *config.Config
	handler http.Handler
	reload  *ReloadServer
	watcher *Watcher
	builder *tailwind.Builder
	logger  *log.Logger
}

// NewServer creates a development server around the application handler.
func NewServer(cfg *config.Config, handler http.Handler, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		cfg:     cfg,
		handler: handler,
		reload:  NewReloadServer(),
		watcher: NewWatcher(WatcherConfig{
			Paths:  cfg.Dev.Watch,
			Ignore: cfg.Dev.Ignore,
		}),
		builder: tailwind.NewBuilder(tailwind.NewBinary(cfg.Tailwind.Version)),
		logger:  logger,
	}
}

// Run starts the server and blocks until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	s.watcher.OnChange(s.handleChange)

	// Initial CSS build so the first page load has styles.
	if err := s.rebuildCSS(ctx); err != nil {
		errors.PrintError(err)
	}

	go func() {
		if err := s.watcher.Start(ctx); err != nil && ctx.Err() == nil {
			errors.PrintError(err)
		}
	}()

	mux := http.NewServeMux()
	mux.Handle(ReloadPath, s.reload)
	mux.Handle(s.cfg.Static.Prefix, http.StripPrefix(s.cfg.Static.Prefix,
		http.FileServer(http.Dir(s.cfg.Static.Dir))))
	mux.Handle("/", s.injectReload(s.handler))

	srv := &http.Server{
		Addr:    s.cfg.DevAddr(),
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Printf("dev server listening on http://%s", s.cfg.DevAddr())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.reload.Close()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return errors.New("H301").Wrap(err)
	}
}

// handleChange reacts to a debounced file change.
func (s *Server) handleChange(change Change) {
	switch change.Type {
	case ChangeGo:
		s.logger.Printf("changed: %s", change.Path)
		if err := s.rebuildCSS(context.Background()); err != nil {
			s.reload.NotifyError(err.Error())
			return
		}
		s.reload.ClearError()
		s.reload.NotifyReload()
	case ChangeCSS:
		s.logger.Printf("changed: %s", change.Path)
		if err := s.rebuildCSS(context.Background()); err != nil {
			s.reload.NotifyError(err.Error())
			return
		}
		s.reload.ClearError()
		s.reload.NotifyCSS(s.cfg.Tailwind.Output)
	case ChangeAsset:
		s.reload.NotifyReload()
	}
}

// rebuildCSS runs a one-shot Tailwind build. Go sources are part of the
// content globs, so class changes in components are picked up.
func (s *Server) rebuildCSS(ctx context.Context) error {
	return s.builder.Build(ctx, tailwind.BuildConfig{
		InputPath:  s.cfg.Tailwind.Input,
		OutputPath: s.cfg.CSSOutputPath(),
		ProjectDir: s.cfg.Dir(),
		Content:    s.cfg.Tailwind.Content,
	})
}

// injectReload inserts the live reload script before </body> in HTML
// responses.
func (s *Server) injectReload(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &bufferingWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		body := rec.buf.Bytes()
		if strings.Contains(rec.Header().Get("Content-Type"), "text/html") {
			if idx := bytes.LastIndex(body, []byte("</body>")); idx >= 0 {
				var injected bytes.Buffer
				injected.Write(body[:idx])
				injected.WriteString(ClientScript)
				injected.Write(body[idx:])
				body = injected.Bytes()
			}
		}

		rec.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(rec.status)
		w.Write(body)
	})
}

// bufferingWriter captures the response so the reload script can be
// injected before it is sent.
type bufferingWriter struct {
	http.ResponseWriter
	buf    bytes.Buffer
	status int
}

func (w *bufferingWriter) WriteHeader(status int) {
	w.status = status
}

func (w *bufferingWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}
