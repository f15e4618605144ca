package pkg

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spillRecord struct {
	Module string
	Checks []string
	Failed int
}

func TestFileSpill(t *testing.T) {
	t.Run("NewFileSpill", func(t *testing.T) {
		spill, err := NewFileSpill[int](WithDir(t.TempDir()))
		require.NoError(t, err)
		require.NotNil(t, spill)
		require.True(t, strings.HasPrefix(filepath.Base(spill.Path()), "stubcorpus-spill-"))
		require.Equal(t, ".gob", filepath.Ext(spill.Path()))
		require.NoError(t, spill.Close())
	})

	t.Run("Append and Range keep order", func(t *testing.T) {
		spill, err := NewFileSpill[string](WithDir(t.TempDir()))
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.Append("first"))
		require.NoError(t, spill.Append("second"))
		require.NoError(t, spill.Append("third"))

		var got []string
		var indexes []uint64

		err = spill.Range(func(index uint64, item string) error {
			indexes = append(indexes, index)
			got = append(got, item)

			return nil
		})
		require.NoError(t, err)
		require.Equal(t, []string{"first", "second", "third"}, got)
		require.Equal(t, []uint64{0, 1, 2}, indexes)
	})

	t.Run("Len returns correct count", func(t *testing.T) {
		spill, err := NewFileSpill[int](WithDir(t.TempDir()))
		require.NoError(t, err)
		defer spill.Close()

		require.Equal(t, uint64(0), spill.Len())

		require.NoError(t, spill.Append(1))
		require.Equal(t, uint64(1), spill.Len())

		require.NoError(t, spill.Append(2))
		require.NoError(t, spill.Append(3))
		require.Equal(t, uint64(3), spill.Len())
	})

	t.Run("Range decodes structs into fresh values", func(t *testing.T) {
		spill, err := NewFileSpill[spillRecord](WithDir(t.TempDir()))
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.Append(spillRecord{Module: "module_0", Checks: []string{"a", "b"}, Failed: 1}))
		require.NoError(t, spill.Append(spillRecord{Module: "module_1"}))

		var got []spillRecord

		err = spill.Range(func(_ uint64, item spillRecord) error {
			got = append(got, item)
			return nil
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, []string{"a", "b"}, got[0].Checks)
		require.Nil(t, got[1].Checks)
		require.Equal(t, 0, got[1].Failed)
	})

	t.Run("Range on empty spill", func(t *testing.T) {
		spill, err := NewFileSpill[int](WithDir(t.TempDir()))
		require.NoError(t, err)
		defer spill.Close()

		calls := 0
		err = spill.Range(func(uint64, int) error {
			calls++
			return nil
		})
		require.NoError(t, err)
		require.Zero(t, calls)
	})

	t.Run("Range stops on callback error", func(t *testing.T) {
		spill, err := NewFileSpill[int](WithDir(t.TempDir()))
		require.NoError(t, err)
		defer spill.Close()

		for i := range 5 {
			require.NoError(t, spill.Append(i))
		}

		stop := errors.New("stop")
		seen := 0

		err = spill.Range(func(_ uint64, item int) error {
			seen++
			if item == 2 {
				return stop
			}

			return nil
		})
		require.ErrorIs(t, err, stop)
		require.Equal(t, 3, seen)
	})

	t.Run("Concurrent appends", func(t *testing.T) {
		spill, err := NewFileSpill[int](WithDir(t.TempDir()))
		require.NoError(t, err)
		defer spill.Close()

		var wg sync.WaitGroup

		for i := range 20 {
			wg.Add(1)

			go func() {
				defer wg.Done()
				assert.NoError(t, spill.Append(i))
			}()
		}

		wg.Wait()
		require.Equal(t, uint64(20), spill.Len())

		sum := 0
		err = spill.Range(func(_ uint64, item int) error {
			sum += item
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 190, sum)
	})

	t.Run("Close removes the file", func(t *testing.T) {
		spill, err := NewFileSpill[int](WithDir(t.TempDir()))
		require.NoError(t, err)
		require.NoError(t, spill.Append(1))

		path := spill.Path()
		require.FileExists(t, path)

		require.NoError(t, spill.Close())
		require.NoFileExists(t, path)
		require.NoError(t, spill.Close(), "second close is a no-op")
	})

	t.Run("WithKeep leaves the file", func(t *testing.T) {
		spill, err := NewFileSpill[int](WithDir(t.TempDir()), WithKeep())
		require.NoError(t, err)
		require.NoError(t, spill.Append(1))
		require.NoError(t, spill.Close())

		info, err := os.Stat(spill.Path())
		require.NoError(t, err)
		require.Positive(t, info.Size())
	})

	t.Run("Append after Close fails", func(t *testing.T) {
		spill, err := NewFileSpill[int](WithDir(t.TempDir()))
		require.NoError(t, err)
		require.NoError(t, spill.Close())

		require.Error(t, spill.Append(1))
	})

	t.Run("WithDir creates missing directories", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "spill")

		spill, err := NewFileSpill[int](WithDir(dir))
		require.NoError(t, err)
		defer spill.Close()

		require.Equal(t, dir, filepath.Dir(spill.Path()))
	})
}
