// Package main runs the web service and the MCP HTTP server in one container.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	entrypoint "github.com/louisbranch/numerals.space/internal/platform/cmd"
)

// shutdownTimeout is the grace period before forcing child exit.
const shutdownTimeout = 10 * time.Second

// containerConfig names the binaries and the MCP bind address. The web child
// reads its own NUMERALS_SPACE_* variables from the inherited environment.
type containerConfig struct {
	WebBinary   string `env:"ENTRYPOINT_WEB_BIN" envDefault:"/app/web"`
	MCPBinary   string `env:"ENTRYPOINT_MCP_BIN" envDefault:"/app/mcp"`
	MCPHTTPAddr string `env:"MCP_HTTP_ADDR"      envDefault:"0.0.0.0:8085"`
}

// childProcess describes a managed child command.
type childProcess struct {
	name string
	cmd  *exec.Cmd
}

// processExit reports a child process exit result.
type processExit struct {
	name string
	err  error
}

// main starts the web server and MCP HTTP server, then supervises them.
func main() {
	log.SetPrefix("[ENTRYPOINT] ")
	var cfg containerConfig
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		log.Fatalf("parse config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	children, err := startChildren(childCommands(cfg))
	if err != nil {
		log.Fatalf("%v", err)
	}
	os.Exit(supervise(ctx, children, shutdownTimeout))
}

// childCommands builds the commands in start order.
func childCommands(cfg containerConfig) []*childProcess {
	return []*childProcess{
		{name: "web", cmd: exec.Command(cfg.WebBinary)},
		{name: "mcp", cmd: exec.Command(cfg.MCPBinary, "-transport=http", "-http-addr="+cfg.MCPHTTPAddr)},
	}
}

// startChildren starts every child with inherited stdio streams, stopping
// the ones already running when a later start fails.
func startChildren(children []*childProcess) ([]*childProcess, error) {
	started := make([]*childProcess, 0, len(children))
	for _, child := range children {
		child.cmd.Stdout = os.Stdout
		child.cmd.Stderr = os.Stderr
		if err := child.cmd.Start(); err != nil {
			terminateChildren(started)
			return nil, fmt.Errorf("start %s: %w", child.name, err)
		}
		started = append(started, child)
	}
	return started, nil
}

// supervise waits until ctx ends or any child exits, stops the rest and
// returns the exit code for the container.
func supervise(ctx context.Context, children []*childProcess, timeout time.Duration) int {
	exitCh := make(chan processExit, len(children))
	for _, child := range children {
		go waitChild(child, exitCh)
	}

	select {
	case <-ctx.Done():
		log.Printf("shutdown signal received")
		terminateChildren(children)
		waitForChildren(exitCh, len(children), timeout, children)
		return 0
	case exit := <-exitCh:
		log.Printf("%s exited: %v", exit.name, exit.err)
		terminateChildren(children)
		waitForChildren(exitCh, len(children)-1, timeout, children)
		if exit.err == nil {
			// A service that stops on its own is still a container failure.
			return 1
		}
		return exitCode(exit.err)
	}
}

// waitChild waits for a child process and reports its exit.
func waitChild(child *childProcess, exitCh chan<- processExit) {
	err := child.cmd.Wait()
	exitCh <- processExit{name: child.name, err: err}
}

// terminateChildren sends SIGTERM to all child processes.
func terminateChildren(children []*childProcess) {
	for _, child := range children {
		if child == nil || child.cmd == nil || child.cmd.Process == nil {
			continue
		}
		_ = child.cmd.Process.Signal(syscall.SIGTERM)
	}
}

// waitForChildren waits for the remaining exits or forces shutdown.
func waitForChildren(exitCh <-chan processExit, remaining int, timeout time.Duration, children []*childProcess) {
	if remaining <= 0 {
		return
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for remaining > 0 {
		select {
		case <-exitCh:
			remaining--
		case <-timer.C:
			forceKill(children)
			return
		}
	}
}

// forceKill sends SIGKILL to any child still running.
func forceKill(children []*childProcess) {
	for _, child := range children {
		if child == nil || child.cmd == nil || child.cmd.Process == nil {
			continue
		}
		if child.cmd.ProcessState != nil {
			continue
		}
		_ = child.cmd.Process.Kill()
	}
}

// exitCode derives a process exit code from a wait error.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
