package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

const (
	stubExtension    = ".py"
	recursiveSuffix  = "/..."
	defaultCorpusArg = "./..."
)

// skippedDirs are never descended into while collecting stub files.
var skippedDirs = map[string]struct{}{
	".git":         {},
	".venv":        {},
	"venv":         {},
	"__pycache__":  {},
	"node_modules": {},
}

// ModuleSource loads corpus modules from path patterns.
type ModuleSource interface {
	// Load resolves Go-style path patterns (./..., ./dir/..., ./dir, file.py),
	// drops files matching any exclude regex and parses the rest.
	Load(ctx context.Context, paths []m.Path, exclude []string) ([]m.Module, error)
}

// LocalModuleSource reads stub files through a SourceFSAdapter and parses them
// with a StubParser on a bounded worker pool.
type LocalModuleSource struct {
	fs      SourceFSAdapter
	parser  StubParser
	workers int
}

// NewLocalModuleSource wires a ModuleSource.
func NewLocalModuleSource(fs SourceFSAdapter, parser StubParser) *LocalModuleSource {
	return &LocalModuleSource{
		fs:      fs,
		parser:  parser,
		workers: runtime.NumCPU(),
	}
}

// Load implements ModuleSource. Modules are returned in path order.
func (s *LocalModuleSource) Load(ctx context.Context, paths []m.Path, exclude []string) ([]m.Module, error) {
	filters, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	files, err := s.collectFiles(ctx, paths, filters)
	if err != nil {
		return nil, err
	}

	modules := make([]m.Module, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)

	for idx, file := range files {
		group.Go(func() error {
			module, err := s.loadFile(groupCtx, file)
			if err != nil {
				return err
			}

			modules[idx] = module

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("loaded corpus", "paths", paths, "modules", len(modules))

	return modules, nil
}

func (s *LocalModuleSource) loadFile(ctx context.Context, path m.Path) (m.Module, error) {
	content, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		slog.Error("failed to read stub file", "path", path, "error", err)
		return m.Module{}, fmt.Errorf("read %s: %w", path, err)
	}

	hash, err := s.fs.HashFile(ctx, path)
	if err != nil {
		slog.Error("failed to hash stub file", "path", path, "error", err)
		return m.Module{}, fmt.Errorf("hash %s: %w", path, err)
	}

	module, err := s.parser.Parse(ctx, path, content)
	if err != nil {
		return m.Module{}, err
	}

	fullPath, err := filepath.Abs(string(path))
	if err != nil {
		fullPath = string(path)
	}

	module.Source = &m.File{
		FullPath:  m.Path(fullPath),
		ShortPath: path,
		Hash:      hash,
	}

	return module, nil
}

func (s *LocalModuleSource) collectFiles(ctx context.Context, paths []m.Path, filters []*regexp.Regexp) ([]m.Path, error) {
	if len(paths) == 0 {
		paths = []m.Path{defaultCorpusArg}
	}

	seen := make(map[m.Path]struct{})

	var files []m.Path

	add := func(path m.Path) {
		clean := m.Path(filepath.Clean(string(path)))
		if _, ok := seen[clean]; ok || excluded(clean, filters) {
			return
		}

		seen[clean] = struct{}{}
		files = append(files, clean)
	}

	for _, pattern := range paths {
		root, recursive := splitPattern(pattern)

		info, err := s.fs.FileInfo(ctx, root)
		if err != nil {
			return nil, fmt.Errorf("path %s: %w", root, err)
		}

		if !info.IsDir() {
			add(root)
			continue
		}

		err = s.fs.Walk(ctx, root, recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if _, skip := skippedDirs[info.Name()]; skip && path != string(root) {
					return filepath.SkipDir
				}

				return nil
			}

			if filepath.Ext(path) == stubExtension {
				add(m.Path(path))
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	return files, nil
}

// splitPattern turns "./dir/..." into ("./dir", true).
func splitPattern(pattern m.Path) (m.Path, bool) {
	p := string(pattern)
	if p == "..." {
		return ".", true
	}

	if strings.HasSuffix(p, recursiveSuffix) {
		root := strings.TrimSuffix(p, recursiveSuffix)
		if root == "" {
			root = "."
		}

		return m.Path(root), true
	}

	return pattern, false
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	filters := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		if strings.TrimSpace(pattern) == "" {
			continue
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		filters = append(filters, re)
	}

	return filters, nil
}

func excluded(path m.Path, filters []*regexp.Regexp) bool {
	for _, re := range filters {
		if re.MatchString(string(path)) {
			return true
		}
	}

	return false
}
