// Package domain contains the stub runtime, its verification and the CLI use cases.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"stubcorpus.dev/pkg/stubcorpus/internal/adapter"
	"stubcorpus.dev/pkg/stubcorpus/internal/controller"
	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
	"stubcorpus.dev/pkg/stubcorpus/pkg"
)

// SourceArgs selects the corpus files a command works on.
type SourceArgs struct {
	Paths   []m.Path
	Exclude []string
}

// ListArgs contains the arguments for listing modules.
type ListArgs struct {
	SourceArgs
}

// ShowArgs contains the arguments for showing one module.
type ShowArgs struct {
	SourceArgs
	Module string
}

// CallArgs contains the arguments for calling a free function.
type CallArgs struct {
	SourceArgs
	Module   string
	Function string
	Args     []string
}

// InvokeArgs contains the arguments for constructing a class and calling a method.
type InvokeArgs struct {
	SourceArgs
	Module string
	Class  string
	Field  string
	Method string
	Args   []string
}

// CheckArgs contains the arguments for verifying modules.
type CheckArgs struct {
	SourceArgs
	Reports         m.Path
	Threads         int
	ShardIndex      int
	TotalShardCount int
}

// ReportsArgs contains the arguments for viewing saved reports.
type ReportsArgs struct {
	Reports m.Path
}

// Workflow defines the use cases behind the CLI commands.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Show(ctx context.Context, args ShowArgs) error
	Call(ctx context.Context, args CallArgs) error
	Invoke(ctx context.Context, args InvokeArgs) error
	Check(ctx context.Context, args CheckArgs) error
	Reports(ctx context.Context, args ReportsArgs) error
}

type workflow struct {
	adapter.ModuleSource
	adapter.ReportStore
	controller.UI
	Verifier
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	source adapter.ModuleSource,
	reportStore adapter.ReportStore,
	ui controller.UI,
	verifier Verifier,
) Workflow {
	return &workflow{
		ModuleSource: source,
		ReportStore:  reportStore,
		UI:           ui,
		Verifier:     verifier,
	}
}

func (w *workflow) catalog(ctx context.Context, args SourceArgs) (*Catalog, error) {
	modules, err := w.Load(ctx, args.Paths, args.Exclude)
	if err != nil {
		slog.Error("Failed to load corpus", "paths", args.Paths, "error", err)
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	return NewCatalog(modules...)
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx, controller.WithBrowseMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	catalog, err := w.catalog(ctx, args.SourceArgs)
	if err != nil {
		return err
	}

	if err := w.DisplayModules(ctx, catalog.Summaries()); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) Show(ctx context.Context, args ShowArgs) error {
	if err := w.Start(ctx, controller.WithBrowseMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	catalog, err := w.catalog(ctx, args.SourceArgs)
	if err != nil {
		return err
	}

	module, err := catalog.Module(args.Module)
	if err != nil {
		return err
	}

	return w.DisplayModule(ctx, module, Analyze(module))
}

func (w *workflow) Call(ctx context.Context, args CallArgs) error {
	catalog, err := w.catalog(ctx, args.SourceArgs)
	if err != nil {
		return err
	}

	fn, err := catalog.Function(args.Module, args.Function)
	if err != nil {
		return err
	}

	if len(args.Args) != len(fn.Params) {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrArity, fn.Name, len(fn.Params), len(args.Args))
	}

	values, err := parseArgs(fn.Params, args.Args)
	if err != nil {
		return err
	}

	outcome, err := Call(fn, values...)
	if err != nil {
		return err
	}

	slog.Debug("called function", "module", args.Module, "function", fn.Name, "result", outcome.Text)

	return w.DisplayOutcome(ctx, outcome)
}

func (w *workflow) Invoke(ctx context.Context, args InvokeArgs) error {
	catalog, err := w.catalog(ctx, args.SourceArgs)
	if err != nil {
		return err
	}

	class, err := catalog.Class(args.Module, args.Class)
	if err != nil {
		return err
	}

	field, err := ParseValue(class.Field.Type, args.Field)
	if err != nil {
		return err
	}

	instance, err := NewInstance(class, field)
	if err != nil {
		return err
	}

	method, ok := DispatchTable(class)[args.Method]
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownMethod, class.Name, args.Method)
	}

	if len(args.Args) != len(method.Params) {
		return fmt.Errorf("%w: %s.%s takes %d, got %d", ErrArity, class.Name, method.Name, len(method.Params), len(args.Args))
	}

	values, err := parseArgs(method.Params, args.Args)
	if err != nil {
		return err
	}

	outcome, err := instance.Invoke(args.Method, values...)
	if err != nil {
		return err
	}

	slog.Debug("invoked method", "module", args.Module, "class", class.Name, "method", method.Name, "result", outcome.String())

	return w.DisplayOutcome(ctx, outcome)
}

func parseArgs(params []m.Param, raw []string) ([]m.Value, error) {
	values := make([]m.Value, 0, len(raw))

	for idx, text := range raw {
		value, err := ParseValue(params[idx].Type, text)
		if err != nil {
			return nil, fmt.Errorf("argument %s: %w", params[idx].Name, err)
		}

		values = append(values, value)
	}

	return values, nil
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	if err := w.Start(ctx, controller.WithCheckMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	catalog, err := w.catalog(ctx, args.SourceArgs)
	if err != nil {
		return err
	}

	threads := max(args.Threads, 1)
	modules := ShardModules(catalog.Modules(), args.ShardIndex, args.TotalShardCount)

	w.DisplayCheckStart(ctx, len(modules), threads, args.ShardIndex, max(args.TotalShardCount, 1))

	spill, err := pkg.NewFileSpill[m.Report]()
	if err != nil {
		return fmt.Errorf("create report spill: %w", err)
	}

	defer func() {
		if err := spill.Close(); err != nil {
			slog.Error("Failed to close report spill", "error", err)
		}
	}()

	if err := w.verifyModules(ctx, modules, threads, spill); err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	reports, summary, err := collectReports(spill)
	if err != nil {
		return fmt.Errorf("collect reports: %w", err)
	}

	if args.Reports != "" {
		if args.TotalShardCount <= 1 {
			if err := w.CleanReports(ctx, args.Reports); err != nil {
				return fmt.Errorf("clean reports: %w", err)
			}
		}

		if err := w.SaveReports(ctx, args.Reports, reports); err != nil {
			return fmt.Errorf("save reports: %w", err)
		}
	}

	w.DisplaySummary(ctx, summary)

	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrChecksFailed, summary.Failed, summary.Checks)
	}

	return nil
}

func (w *workflow) verifyModules(ctx context.Context, modules []m.Module, threads int, spill pkg.FileSpill[m.Report]) error {
	var displayMutex sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for _, module := range modules {
		group.Go(func() error {
			report, err := w.Verify(groupCtx, module)
			if err != nil {
				slog.Error("Failed to verify module", "module", module.Name, "error", err)
				return fmt.Errorf("module %s: %w", module.Name, err)
			}

			if err := spill.Append(report); err != nil {
				return err
			}

			displayMutex.Lock()
			w.DisplayReport(groupCtx, report)
			displayMutex.Unlock()

			return nil
		})
	}

	return group.Wait()
}

func collectReports(spill pkg.FileSpill[m.Report]) ([]m.Report, m.Summary, error) {
	var summary m.Summary

	reports := make([]m.Report, 0, spill.Len())

	err := spill.Range(func(_ uint64, report m.Report) error {
		reports = append(reports, report)
		summary.Add(report)

		return nil
	})
	if err != nil {
		return nil, m.Summary{}, err
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Module < reports[j].Module
	})

	return reports, summary, nil
}

// ShardModules keeps the modules whose position in name order falls in the
// given shard. A total of zero or one keeps everything.
func ShardModules(modules []m.Module, shardIndex int, totalShardCount int) []m.Module {
	if totalShardCount <= 1 {
		return modules
	}

	var shard []m.Module

	for idx, module := range modules {
		if idx%totalShardCount == shardIndex {
			shard = append(shard, module)
		}
	}

	return shard
}

func (w *workflow) Reports(ctx context.Context, args ReportsArgs) error {
	if err := w.Start(ctx, controller.WithBrowseMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	reports, err := w.LoadReports(ctx, args.Reports)
	if err != nil {
		slog.Error("Failed to load reports", "reports", args.Reports, "error", err)
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.DisplayReports(ctx, reports); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}
