//go:build windows

package main

import (
	"context"
	"os"
	"os/exec"
	"strconv"
	"time"
)

type processHandle struct {
	cmd *exec.Cmd
}

// startProcess runs 'go run .' in dir.
func startProcess(ctx context.Context, dir string, env []string) (*processHandle, error) {
	cmd := exec.CommandContext(ctx, "go", "run", ".")
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = env

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &processHandle{cmd: cmd}, nil
}

// stopProcess kills the full process tree. go run execs the built binary as
// a child, so killing the parent alone would leave the app and its port
// behind; taskkill /T takes the tree down in one call.
func stopProcess(proc *processHandle) {
	if proc == nil || proc.cmd == nil || proc.cmd.Process == nil {
		return
	}

	pid := strconv.Itoa(proc.cmd.Process.Pid)
	if err := exec.Command("taskkill", "/T", "/F", "/PID", pid).Run(); err != nil {
		_ = proc.cmd.Process.Kill()
	}

	done := make(chan error, 1)
	go func() {
		done <- proc.cmd.Wait()
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
	}
}
