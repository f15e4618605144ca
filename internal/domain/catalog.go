package domain

import (
	"fmt"
	"sort"
	"sync"

	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

// Catalog indexes loaded modules by name.
type Catalog struct {
	mu      sync.RWMutex
	modules map[string]m.Module
}

// NewCatalog builds a catalog from modules, rejecting duplicate names.
func NewCatalog(modules ...m.Module) (*Catalog, error) {
	catalog := &Catalog{modules: make(map[string]m.Module, len(modules))}

	for _, module := range modules {
		if err := catalog.Add(module); err != nil {
			return nil, err
		}
	}

	return catalog, nil
}

// Add registers a module.
func (c *Catalog) Add(module m.Module) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.modules[module.Name]; ok {
		return fmt.Errorf("%w: %s (%s and %s)", ErrDuplicateModule, module.Name, sourcePath(existing), sourcePath(module))
	}

	c.modules[module.Name] = module

	return nil
}

// Len returns the number of modules.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.modules)
}

// Modules returns all modules sorted by name.
func (c *Catalog) Modules() []m.Module {
	c.mu.RLock()
	defer c.mu.RUnlock()

	modules := make([]m.Module, 0, len(c.modules))
	for _, module := range c.modules {
		modules = append(modules, module)
	}

	sort.Slice(modules, func(i, j int) bool {
		return modules[i].Name < modules[j].Name
	})

	return modules
}

// Module looks a module up by name.
func (c *Catalog) Module(name string) (m.Module, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	module, ok := c.modules[name]
	if !ok {
		return m.Module{}, fmt.Errorf("module %q: %w", name, ErrNotFound)
	}

	return module, nil
}

// Function looks a free function up. When a module defines the same name
// twice, the later definition is returned, as at import time.
func (c *Catalog) Function(moduleName, name string) (m.Function, error) {
	module, err := c.Module(moduleName)
	if err != nil {
		return m.Function{}, err
	}

	for idx := len(module.Functions) - 1; idx >= 0; idx-- {
		if module.Functions[idx].Name == name {
			return module.Functions[idx], nil
		}
	}

	return m.Function{}, fmt.Errorf("function %s.%s: %w", moduleName, name, ErrNotFound)
}

// Class looks a class up, with the same last-definition rule as Function.
func (c *Catalog) Class(moduleName, name string) (m.Class, error) {
	module, err := c.Module(moduleName)
	if err != nil {
		return m.Class{}, err
	}

	for idx := len(module.Classes) - 1; idx >= 0; idx-- {
		if module.Classes[idx].Name == name {
			return module.Classes[idx], nil
		}
	}

	return m.Class{}, fmt.Errorf("class %s.%s: %w", moduleName, name, ErrNotFound)
}

// Summaries returns one listing row per module, sorted by name.
func (c *Catalog) Summaries() []m.ModuleSummary {
	modules := c.Modules()
	summaries := make([]m.ModuleSummary, 0, len(modules))

	for _, module := range modules {
		summaries = append(summaries, m.ModuleSummary{
			Name:      module.Name,
			Path:      sourcePath(module),
			Functions: module.FunctionCount(),
			Classes:   module.ClassCount(),
			Findings:  len(Analyze(module)),
		})
	}

	return summaries
}

func sourcePath(module m.Module) m.Path {
	if module.Source == nil {
		return ""
	}

	return module.Source.ShortPath
}
