package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			Padding(0, 2)
	passedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI for terminals: long listings open in a pager, results
// are colored. Everything else is printed like SimpleUI.
type TUI struct {
	*SimpleUI
	output io.Writer
	mode   StartMode
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		output:   cmd.OutOrStdout(),
	}
}

// Start records the mode the workflow runs in.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := &StartConfig{}
	for _, option := range options {
		option(config)
	}

	t.mode = config.mode

	return nil
}

// DisplayModules shows the module table, paged when it does not fit.
func (t *TUI) DisplayModules(ctx context.Context, summaries []m.ModuleSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.page("Stub corpus modules", renderModulesTable(summaries))
}

// DisplayReports shows the saved reports table, paged when it does not fit.
func (t *TUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.page("Stub corpus reports", renderReportsTable(reports))
}

// DisplayReport prints a colored one-line result per module.
func (t *TUI) DisplayReport(ctx context.Context, report m.Report) {
	if err := ctx.Err(); err != nil {
		return
	}

	failed := report.Failed()

	status := passedStyle.Render(m.Passed.String())
	if len(failed) > 0 {
		status = failedStyle.Render(m.Failed.String())
	}

	t.printf("%-24s %s %s\n", report.Module, status,
		mutedStyle.Render(fmt.Sprintf("%d check(s), %d finding(s)", len(report.Checks), len(report.Findings))))

	for _, check := range failed {
		t.printf("  %s %s\n%s", check.Property, check.Symbol, diffCheck(check))
	}
}

// DisplaySummary prints the aggregated results with the pass rate colored.
func (t *TUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	style := passedStyle
	if summary.Failed > 0 {
		style = failedStyle
	}

	t.printf("Modules: %d | Checks: %s | Findings: %d\n",
		summary.Modules,
		style.Render(fmt.Sprintf("%d/%d passed (%s)", summary.Passed, summary.Checks, formatPercent(summary.PassRate()))),
		summary.Findings)
}

func (t *TUI) page(title, body string) error {
	model := newPagerModel(title, strings.Split(strings.TrimRight(body, "\n"), "\n"))

	// Check runs stream their output; only browsing opens the pager.
	if f, ok := t.output.(*os.File); ok && t.mode == ModeBrowse {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// pagerModel is the Bubble Tea model scrolling over pre-rendered lines.
type pagerModel struct {
	title    string
	lines    []string
	height   int
	width    int
	offset   int
	quitting bool
}

func newPagerModel(title string, lines []string) pagerModel {
	return pagerModel{
		title: title,
		lines: lines,
	}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.width = msg.Width
		pm.offset = min(pm.offset, pm.maxOffset())

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

//nolint:cyclop,exhaustive // Key handling requires multiple cases for UI navigation
func (pm pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		pm.quitting = true
		return pm, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		pm.quitting = true
		return pm, tea.Quit
	case "down", "j":
		pm.offset = min(pm.offset+1, pm.maxOffset())
	case "up", "k":
		pm.offset = max(pm.offset-1, 0)
	case "g", "home":
		pm.offset = 0
	case "G", "end":
		pm.offset = pm.maxOffset()
	case "d", "pgdown":
		pm.offset = min(pm.offset+pm.itemsPerPage(), pm.maxOffset())
	case "u", "pgup":
		pm.offset = max(pm.offset-pm.itemsPerPage(), 0)
	}

	return pm, nil
}

// itemsPerPage calculates how many lines fit below the title and above the footer.
func (pm pagerModel) itemsPerPage() int {
	if pm.height == 0 {
		return 10
	}

	// title box (3) + blank + blank + page line + help line
	reserved := 7

	return max(pm.height-reserved, 1)
}

func (pm pagerModel) maxOffset() int {
	return max(len(pm.lines)-pm.itemsPerPage(), 0)
}

// needsPagination returns true if the listing is too large to fit on screen.
func (pm pagerModel) needsPagination() bool {
	return pm.height > 0 && len(pm.lines) > pm.itemsPerPage()
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(pm.title))
	b.WriteString("\n\n")

	visible := pm.lines

	if pm.needsPagination() {
		end := min(pm.offset+pm.itemsPerPage(), len(pm.lines))
		visible = pm.lines[pm.offset:end]
	}

	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if pm.needsPagination() {
		perPage := pm.itemsPerPage()
		currentPage := (pm.offset / perPage) + 1
		totalPages := (len(pm.lines) + perPage - 1) / perPage

		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("Page %d/%d | Showing %d-%d of %d",
			currentPage, totalPages, pm.offset+1, min(pm.offset+perPage, len(pm.lines)), len(pm.lines))))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("↑/k: up | ↓/j: down | g: top | G: bottom | q: quit"))
		b.WriteString("\n")
	}

	return b.String()
}
