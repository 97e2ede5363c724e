package main

import (
	"context"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danielkjellid/hue/internal/config"
	"github.com/danielkjellid/hue/internal/dev"
)

func devCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Run the application with live rebuild",
		Long: `Run the application and restart it when Go sources change.

The CLI watches the project tree, runs 'go run .' in its own process
group, and rebuilds the stylesheet on every change. The application
itself serves the live reload WebSocket when started through hue's dev
server.

Examples:
  hue dev
  hue dev --port=3000
  hue dev --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDev(port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from hue.yaml)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from hue.yaml)")

	return cmd
}

func runDev(port int, host string) error {
	if _, err := exec.LookPath("go"); err != nil {
		errorMsg("Go is not installed or not in PATH")
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Dev.Port = port
	}
	if host != "" {
		cfg.Dev.Host = host
	}

	printBanner()
	info("dev server at http://%s", cfg.DevAddr())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		info("shutting down...")
		cancel()
	}()

	if err := buildCSS(ctx, cfg, false); err != nil {
		errorMsg("CSS build failed: %v", err)
	}

	env := append(os.Environ(),
		"HUE_DEV=1",
		"HUE_DEV_ADDR="+cfg.DevAddr(),
	)

	proc, err := startProcess(ctx, cfg.Dir(), env)
	if err != nil {
		return err
	}

	restarts := make(chan struct{}, 1)
	watcher := dev.NewWatcher(dev.WatcherConfig{
		Paths:  cfg.Dev.Watch,
		Ignore: cfg.Dev.Ignore,
	})
	watcher.OnChange(func(change dev.Change) {
		switch change.Type {
		case dev.ChangeGo:
			select {
			case restarts <- struct{}{}:
			default:
			}
		case dev.ChangeCSS:
			if err := buildCSS(context.Background(), cfg, false); err != nil {
				errorMsg("CSS build failed: %v", err)
			} else {
				success("Rebuilt CSS")
			}
		}
	})

	go func() {
		if err := watcher.Start(ctx); err != nil && ctx.Err() == nil {
			errorMsg("watcher stopped: %v", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			stopProcess(proc)
			return nil
		case <-restarts:
			info("restarting...")
			stopProcess(proc)
			if err := buildCSS(context.Background(), cfg, false); err != nil {
				errorMsg("CSS build failed: %v", err)
			}
			proc, err = startProcess(ctx, cfg.Dir(), env)
			if err != nil {
				errorMsg("restart failed: %v", err)
			}
		}
	}
}
