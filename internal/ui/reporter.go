package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Reporter is the status channel the core packages use for every
// recoverable failure and every summary count. Implementations must be
// safe for concurrent use; the aggregator calls it from parse workers.
type Reporter interface {
	// Infof reports a neutral status line.
	Infof(format string, args ...any)

	// Warnf reports a recoverable failure.
	Warnf(format string, args ...any)

	// Errorf reports a fatal condition before the caller aborts.
	Errorf(format string, args ...any)

	// Successf reports a completed step.
	Successf(format string, args ...any)
}

// consoleReporter writes styled lines to stdout/stderr.
type consoleReporter struct {
	mu     sync.Mutex
	theme  *Theme
	out    io.Writer
	errOut io.Writer
}

// NewReporter creates a Reporter writing to os.Stdout and os.Stderr.
func NewReporter(theme *Theme) Reporter {
	return &consoleReporter{theme: theme, out: os.Stdout, errOut: os.Stderr}
}

// newConsoleReporter creates a consoleReporter with custom writers (for
// testing).
func newConsoleReporter(theme *Theme, out, errOut io.Writer) *consoleReporter {
	return &consoleReporter{theme: theme, out: out, errOut: errOut}
}

func (r *consoleReporter) Infof(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *consoleReporter) Warnf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.errOut, r.theme.Warn("warning: "+fmt.Sprintf(format, args...)))
}

func (r *consoleReporter) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.errOut, r.theme.Error("error: "+fmt.Sprintf(format, args...)))
}

func (r *consoleReporter) Successf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.out, r.theme.Success(fmt.Sprintf(format, args...)))
}

// Capture is a Reporter that records every message, for tests.
type Capture struct {
	mu        sync.Mutex
	Infos     []string
	Warns     []string
	Errors    []string
	Successes []string
}

func (c *Capture) Infof(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Infos = append(c.Infos, fmt.Sprintf(format, args...))
}

func (c *Capture) Warnf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Warns = append(c.Warns, fmt.Sprintf(format, args...))
}

func (c *Capture) Errorf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Errors = append(c.Errors, fmt.Sprintf(format, args...))
}

func (c *Capture) Successf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Successes = append(c.Successes, fmt.Sprintf(format, args...))
}
