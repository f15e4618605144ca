package domain_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stubcorpus.dev/pkg/stubcorpus/internal/domain"
	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

func TestCatalog_Lookup(t *testing.T) {
	second := m.Module{Name: "module_1", Source: &m.File{ShortPath: "module_1.py"}}

	catalog, err := domain.NewCatalog(second, corpusModule())
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())

	modules := catalog.Modules()
	require.Len(t, modules, 2)
	assert.Equal(t, "module_0", modules[0].Name)
	assert.Equal(t, "module_1", modules[1].Name)

	fn, err := catalog.Function("module_0", "format_output_0")
	require.NoError(t, err)
	assert.Equal(t, 14, fn.Line)

	class, err := catalog.Class("module_0", "ConfigManager0")
	require.NoError(t, err)
	assert.Equal(t, "payload", class.Field.Name)
}

func TestCatalog_NotFound(t *testing.T) {
	catalog, err := domain.NewCatalog(corpusModule())
	require.NoError(t, err)

	_, err = catalog.Module("module_9")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = catalog.Function("module_0", "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = catalog.Class("module_0", "Missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = catalog.Function("module_9", "process_data_0")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_LastFunctionDefinitionWins(t *testing.T) {
	module := m.Module{
		Name: "redefined",
		Functions: []m.Function{
			{Name: "f", Returns: m.HintInt, Line: 1},
			{Name: "f", Returns: m.HintBool, Line: 5},
		},
	}

	catalog, err := domain.NewCatalog(module)
	require.NoError(t, err)

	fn, err := catalog.Function("redefined", "f")
	require.NoError(t, err)
	assert.Equal(t, 5, fn.Line)
}

func TestCatalog_DuplicateModule(t *testing.T) {
	_, err := domain.NewCatalog(corpusModule(), corpusModule())
	require.ErrorIs(t, err, domain.ErrDuplicateModule)
}

func TestCatalog_Summaries(t *testing.T) {
	catalog, err := domain.NewCatalog(corpusModule())
	require.NoError(t, err)

	assert.Equal(t, []m.ModuleSummary{{
		Name:      "module_0",
		Path:      "module_0.py",
		Functions: 3,
		Classes:   1,
		Findings:  6,
	}}, catalog.Summaries())
}

func TestCatalog_ConcurrentAdd(t *testing.T) {
	catalog, err := domain.NewCatalog()
	require.NoError(t, err)

	var wg sync.WaitGroup

	for _, name := range []string{"a", "b", "c", "d"} {
		wg.Add(1)

		go func() {
			defer wg.Done()
			assert.NoError(t, catalog.Add(m.Module{Name: name}))
		}()
	}

	wg.Wait()
	assert.Equal(t, 4, catalog.Len())
}
