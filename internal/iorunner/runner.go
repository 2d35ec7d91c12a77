// Package iorunner executes external command-line tools.
// This is an impure package that spawns subprocesses.
package iorunner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/gnfmt"
)

// Runner executes an external program and blocks until it exits.
// A non-zero exit status is returned as an error.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

const notice = `Running external command line application. This may print messages
to stdout and/or stderr.
The command being run is below. This command cannot be manually re-run
as it will depend on temporary files that no longer exist.

Command: %s

`

// Exec is a Runner based on os/exec.
type Exec struct {
	// Stdout receives standard output of the child process and the
	// command notice.
	Stdout io.Writer
	// Stderr receives standard error of the child process.
	Stderr io.Writer
	// Verbose prints the full command line before execution.
	Verbose bool
}

// New creates an Exec runner that streams output of child processes to
// the standard streams of the application.
func New() *Exec {
	return &Exec{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Verbose: true,
	}
}

// Run executes name with args. There is no timeout, the call returns
// when the process exits or ctx is canceled.
func (e *Exec) Run(ctx context.Context, name string, args ...string) error {
	line := CommandLine(name, args)
	if e.Verbose && e.Stdout != nil {
		fmt.Fprintf(e.Stdout, notice, line)
	}
	slog.Info("Running external command", "command", line)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	start := time.Now()
	err := cmd.Run()
	dur := gnfmt.TimeString(time.Since(start).Seconds())
	if err == nil {
		slog.Info("External command finished", "program", name, "duration", dur)
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		slog.Warn("External command interrupted", "command", line, "error", ctxErr)
		return ExternalToolError(line, -1, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		slog.Error("External command failed",
			"command", line,
			"exit_code", exitErr.ExitCode(),
			"duration", dur,
		)
		return ExternalToolError(line, exitErr.ExitCode(), err)
	}

	slog.Error("Cannot start external command", "program", name, "error", err)
	return ToolNotFoundError(name, err)
}

// CommandLine renders a command with its arguments as one line,
// quoting arguments that contain spaces.
func CommandLine(name string, args []string) string {
	res := make([]string, 0, len(args)+1)
	for _, v := range append([]string{name}, args...) {
		if v == "" || strings.ContainsAny(v, " \t\n\"'") {
			v = strconv.Quote(v)
		}
		res = append(res, v)
	}
	return strings.Join(res, " ")
}
