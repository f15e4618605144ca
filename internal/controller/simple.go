package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayModules prints one table row per module.
func (s *SimpleUI) DisplayModules(ctx context.Context, summaries []m.ModuleSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderModulesTable(summaries))

	return nil
}

func renderModulesTable(summaries []m.ModuleSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Module", "Path", "Functions", "Classes", "Findings"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	functions, classes, findings := 0, 0, 0

	for _, summary := range summaries {
		table.Append([]string{
			summary.Name,
			string(summary.Path),
			strconv.Itoa(summary.Functions),
			strconv.Itoa(summary.Classes),
			strconv.Itoa(summary.Findings),
		})

		functions += summary.Functions
		classes += summary.Classes
		findings += summary.Findings
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Modules %d", len(summaries)),
		"",
		strconv.Itoa(functions),
		strconv.Itoa(classes),
		strconv.Itoa(findings),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayModule prints the declarations and findings of one module.
func (s *SimpleUI) DisplayModule(ctx context.Context, module m.Module, findings []m.Finding) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := ""
	if module.Source != nil {
		path = string(module.Source.ShortPath)
	}

	s.printf("Module %s (%s)\n", module.Name, path)

	if doc := firstLine(module.Doc); doc != "" {
		s.printf("  %s\n", doc)
	}

	s.printf("\nFunctions:\n")

	for _, fn := range module.Functions {
		s.printf("  %4d  %s\n", fn.Line, formatSignature(fn.Name, fn.Params, fn.Returns))
	}

	s.printf("\nClasses:\n")

	for _, class := range module.Classes {
		s.printf("  %4d  %s(%s)\n", class.Line, class.Name, formatParams([]m.Param{class.Field}))

		for _, method := range class.Methods {
			s.printf("  %4d      %-9s %s\n", method.Line, method.Kind, formatSignature(method.Name, method.Params, method.Returns))
		}
	}

	if len(findings) > 0 {
		s.printf("\nFindings:\n")

		for _, finding := range findings {
			s.printf("  %4d  %-19s %s: %s\n", finding.Line, finding.Kind, finding.Symbol, finding.Detail)
		}
	}

	return nil
}

// DisplayOutcome prints the result of a call and flags annotation mismatches.
func (s *SimpleUI) DisplayOutcome(ctx context.Context, outcome m.Outcome) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", outcome.String())

	if !outcome.Conforms() {
		s.printf("note: %s is annotated %s but returned %s\n", outcome.Symbol, outcome.Declared, outcome.Actual)
	}

	return nil
}

// DisplayCheckStart shows concurrency settings.
func (s *SimpleUI) DisplayCheckStart(ctx context.Context, modules int, threads int, shardIndex int, shardCount int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Checking %d module(s) with %d worker(s) (Shard %d/%d)\n", modules, threads, shardIndex, shardCount)
}

// DisplayReport prints a one-line result and a diff per failed check.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) {
	if err := ctx.Err(); err != nil {
		return
	}

	failed := report.Failed()

	status := m.Passed.String()
	if len(failed) > 0 {
		status = m.Failed.String()
	}

	s.printf("%-24s %-6s %d check(s), %d finding(s)\n", report.Module, status, len(report.Checks), len(report.Findings))

	for _, check := range failed {
		s.printf("  %s %s\n%s", check.Property, check.Symbol, diffCheck(check))
	}
}

func diffCheck(check m.Check) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(check.Expected + "\n"),
		B:        difflib.SplitLines(check.Actual + "\n"),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  1,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Sprintf("    expected %q, got %q\n", check.Expected, check.Actual)
	}

	return text
}

// DisplayReports prints saved reports as a table.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderReportsTable(reports))

	return nil
}

func renderReportsTable(reports []m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Module", "Checks", "Failed", "Findings"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	var summary m.Summary

	for _, report := range reports {
		table.Append([]string{
			report.Module,
			strconv.Itoa(len(report.Checks)),
			strconv.Itoa(len(report.Failed())),
			strconv.Itoa(len(report.Findings)),
		})
		summary.Add(report)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Modules %d", summary.Modules),
		strconv.Itoa(summary.Checks),
		strconv.Itoa(summary.Failed),
		strconv.Itoa(summary.Findings),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplaySummary prints the aggregated results.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Modules: %d | Checks: %d/%d passed (%s) | Findings: %d\n",
		summary.Modules, summary.Passed, summary.Checks, formatPercent(summary.PassRate()), summary.Findings)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
