// Package term resolves the terminal geometry the pager budgets pages
// against, with environment and hardcoded fallbacks for non-TTY runs.
package term

import (
	"os"
	"strconv"

	xterm "golang.org/x/term"

	"github.com/faultmgr/fmcli/internal/cliutil"
)

// Defaults used when neither the OS nor the environment can say.
const (
	DefaultWidth  = 80
	DefaultHeight = 25
)

// Size returns the terminal width and height in character cells. It queries
// stdout, stderr, and stdin in turn, then falls back to the COLUMNS/LINES
// environment variables, then to the defaults. Query failures are swallowed.
func Size() (int, int) {
	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		if w, h, err := xterm.GetSize(int(f.Fd())); err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	return envDim("COLUMNS", DefaultWidth), envDim("LINES", DefaultHeight)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return xterm.IsTerminal(int(f.Fd()))
}

// envDim parses a dimension from the environment, falling back when the
// variable is unset or not a positive integer.
func envDim(name string, fallback int) int {
	v := cliutil.Env(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
