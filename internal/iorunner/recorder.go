package iorunner

import (
	"context"
	"sync"
)

// Recorder wraps a Runner and remembers command lines it ran.
type Recorder struct {
	Runner

	mu    sync.Mutex
	lines []string
}

// NewRecorder creates a Recorder around r.
func NewRecorder(r Runner) *Recorder {
	return &Recorder{Runner: r}
}

// Run records the command line and delegates to the wrapped Runner.
func (r *Recorder) Run(ctx context.Context, name string, args ...string) error {
	r.mu.Lock()
	r.lines = append(r.lines, CommandLine(name, args))
	r.mu.Unlock()
	return r.Runner.Run(ctx, name, args...)
}

// Lines returns recorded command lines in order of execution.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]string, len(r.lines))
	copy(res, r.lines)
	return res
}
