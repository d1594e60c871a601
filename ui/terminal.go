// Package ui separates the machine-readable command output (stdout)
// from human-facing progress and error reporting, which goes through
// the structured logger on stderr.
package ui

import (
	"fmt"
	"os"

	"github.com/ledgerwatch/log/v3"
)

// Screen is what commands write their results and progress to.
type Screen interface {
	// Output writes machine-readable results to stdout, verbatim.
	Output(msg string)
	// Print writes a human-facing line, shown only in verbose mode.
	Print(msg string)
	// Logf writes a formatted human-facing line, shown only in
	// verbose mode.
	Logf(format string, args ...interface{})
	// Error reports a command failure.
	Error(err error)
}

type terminal struct {
	log log.Logger
}

// NewTerminal returns a Screen backed by stdout and a stderr logger.
// In non-verbose mode only errors are logged.
func NewTerminal(verbose bool) Screen {
	logger := log.New()
	lvl := log.LvlInfo
	if !verbose {
		lvl = log.LvlError
	}
	logger.SetHandler(log.LvlFilterHandler(lvl, log.StderrHandler))
	return &terminal{log: logger}
}

func (t *terminal) Output(msg string) {
	fmt.Fprint(os.Stdout, msg)
}

func (t *terminal) Print(msg string) {
	t.log.Info(msg)
}

func (t *terminal) Logf(format string, args ...interface{}) {
	t.log.Info(fmt.Sprintf(format, args...))
}

func (t *terminal) Error(err error) {
	t.log.Error(err.Error())
}
