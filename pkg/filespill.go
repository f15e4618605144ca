// Package pkg provides utilities for stubcorpus.
package pkg

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// FileSpill buffers items of type T on disk so long runs do not hold every
// result in memory.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	Range(fn func(index uint64, item T) error) error
	Close() error
}

// SpillOption configures NewFileSpill.
type SpillOption func(*spillConfig)

type spillConfig struct {
	dir  string
	keep bool
}

// WithDir places the spill file in dir instead of the OS temp dir.
func WithDir(dir string) SpillOption {
	return func(c *spillConfig) {
		c.dir = dir
	}
}

// WithKeep leaves the spill file on disk after Close.
func WithKeep() SpillOption {
	return func(c *spillConfig) {
		c.keep = true
	}
}

type fileSpill[T any] struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	encoder *gob.Encoder
	length  uint64
	keep    bool
	closed  bool
}

// NewFileSpill creates an empty spill backed by a fresh gob file.
func NewFileSpill[T any](options ...SpillOption) (FileSpill[T], error) {
	config := spillConfig{dir: os.TempDir()}
	for _, option := range options {
		option(&config)
	}

	if err := os.MkdirAll(config.dir, 0o750); err != nil {
		slog.Error("failed to create spill directory", "path", config.dir, "error", err)
		return nil, fmt.Errorf("failed to create spill directory: %w", err)
	}

	file, err := os.CreateTemp(config.dir, "stubcorpus-spill-*.gob")
	if err != nil {
		slog.Error("failed to create spill file", "path", config.dir, "error", err)
		return nil, fmt.Errorf("failed to create spill file: %w", err)
	}

	slog.Debug("created filespill", "path", file.Name())

	return &fileSpill[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
		keep:    config.keep,
	}, nil
}

// Append implements FileSpill. It is safe for concurrent use.
func (f *fileSpill[T]) Append(item T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return fmt.Errorf("spill %s is closed", f.path)
	}

	if err := f.encoder.Encode(item); err != nil {
		slog.Error("failed to encode item", "path", f.path, "index", f.length, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	f.length++

	return nil
}

// Len implements FileSpill.
func (f *fileSpill[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

// Path implements FileSpill.
func (f *fileSpill[T]) Path() string {
	return f.path
}

// Range implements FileSpill. Items are decoded in append order; an error
// from fn stops the iteration and is returned as is.
func (f *fileSpill[T]) Range(fn func(index uint64, item T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if err != nil {
		slog.Error("failed to open file for range", "path", f.path, "error", err)
		return fmt.Errorf("failed to open file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close file", "path", f.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for i := range f.length {
		var item T
		if err := decoder.Decode(&item); err != nil {
			slog.Error("failed to decode item during range", "path", f.path, "index", i, "error", err)
			return fmt.Errorf("failed to decode item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

// Close implements FileSpill. The backing file is removed unless WithKeep
// was given. Closing twice is a no-op.
func (f *fileSpill[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}

	f.closed = true

	if err := f.file.Close(); err != nil {
		slog.Error("failed to close file", "path", f.path, "error", err)
		return err
	}

	if !f.keep {
		if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	slog.Debug("closed filespill", "path", f.path, "length", f.length)

	return nil
}
