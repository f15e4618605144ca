// Package controller provides output adapters for displaying corpus results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeBrowse StartMode = iota
	ModeCheck
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithBrowseMode sets the UI to listing/inspection mode.
func WithBrowseMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBrowse
	}
}

// WithCheckMode sets the UI to verification mode.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

// UI defines the interface for displaying corpus modules and check results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context)
	DisplayModules(ctx context.Context, summaries []m.ModuleSummary) error
	DisplayModule(ctx context.Context, module m.Module, findings []m.Finding) error
	DisplayOutcome(ctx context.Context, outcome m.Outcome) error
	DisplayCheckStart(ctx context.Context, modules int, threads int, shardIndex int, shardCount int)
	DisplayReport(ctx context.Context, report m.Report)
	DisplayReports(ctx context.Context, reports []m.Report) error
	DisplaySummary(ctx context.Context, summary m.Summary)
}

// NewUI picks the TUI for terminals and the plain UI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
