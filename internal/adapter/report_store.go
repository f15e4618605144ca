package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

const reportExtension = ".yaml"

// ReportStore persists check reports, one file per module.
type ReportStore interface {
	SaveReports(ctx context.Context, dir m.Path, reports []m.Report) error
	LoadReports(ctx context.Context, dir m.Path) ([]m.Report, error)
	CleanReports(ctx context.Context, dir m.Path) error
}

// YAMLReportStore writes reports as YAML documents through a SourceFSAdapter.
type YAMLReportStore struct {
	fs SourceFSAdapter
}

// NewYAMLReportStore constructs a YAMLReportStore.
func NewYAMLReportStore(fs SourceFSAdapter) *YAMLReportStore {
	return &YAMLReportStore{fs: fs}
}

// SaveReports writes each report to <dir>/<module>.yaml. Files are written
// to a temporary name first and renamed into place.
func (s *YAMLReportStore) SaveReports(ctx context.Context, dir m.Path, reports []m.Report) error {
	if err := s.fs.MkdirAll(ctx, dir); err != nil {
		slog.Error("failed to create reports dir", "dir", dir, "error", err)
		return fmt.Errorf("create reports dir: %w", err)
	}

	for _, report := range reports {
		if err := ctx.Err(); err != nil {
			return err
		}

		content, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshal report %s: %w", report.Module, err)
		}

		path := s.fs.JoinPath(ctx, string(dir), reportFileName(report.Module))
		tmp := path + ".tmp"

		if err := s.fs.WriteFile(ctx, tmp, content, 0o600); err != nil {
			slog.Error("failed to write report", "path", tmp, "error", err)
			return fmt.Errorf("write report %s: %w", report.Module, err)
		}

		if err := s.fs.Rename(ctx, tmp, path); err != nil {
			_ = s.fs.Remove(ctx, tmp)

			slog.Error("failed to move report into place", "path", path, "error", err)

			return fmt.Errorf("write report %s: %w", report.Module, err)
		}
	}

	slog.Debug("saved reports", "dir", dir, "count", len(reports))

	return nil
}

// LoadReports reads every report in dir, sorted by module name. A missing
// directory yields no reports.
func (s *YAMLReportStore) LoadReports(ctx context.Context, dir m.Path) ([]m.Report, error) {
	entries, err := s.fs.ReadDir(ctx, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []m.Report{}, nil
		}

		return nil, fmt.Errorf("list reports: %w", err)
	}

	reports := make([]m.Report, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != reportExtension {
			continue
		}

		path := s.fs.JoinPath(ctx, string(dir), entry.Name())

		content, err := s.fs.ReadFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", path, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(content, &report); err != nil {
			slog.Error("failed to decode report", "path", path, "error", err)
			return nil, fmt.Errorf("decode report %s: %w", path, err)
		}

		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Module < reports[j].Module
	})

	return reports, nil
}

// CleanReports removes every report file in dir, leaving other files alone.
func (s *YAMLReportStore) CleanReports(ctx context.Context, dir m.Path) error {
	entries, err := s.fs.ReadDir(ctx, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("list reports: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != reportExtension {
			continue
		}

		if err := s.fs.Remove(ctx, s.fs.JoinPath(ctx, string(dir), entry.Name())); err != nil {
			return fmt.Errorf("remove report %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func reportFileName(module string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, module)

	if name == "" {
		name = "module"
	}

	return name + reportExtension
}
