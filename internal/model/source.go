// Package model defines the data structures for the stub corpus.
package model

// Path represents a file system path.
type Path string

// File represents a corpus source file.
type File struct {
	FullPath  Path
	ShortPath Path
	Hash      string
}

// Module is a single corpus file: a handful of free functions and classes.
type Module struct {
	Name      string
	Source    *File
	Doc       string
	Imports   []string
	Functions []Function
	Classes   []Class
	// SyntaxErrors holds the regions a Python parser would reject.
	SyntaxErrors []SyntaxError
}

// SyntaxError is a region of a module that does not parse.
type SyntaxError struct {
	Line int
	Text string
}

// FunctionCount returns the number of free functions in the module.
func (m Module) FunctionCount() int {
	return len(m.Functions)
}

// ClassCount returns the number of classes in the module.
func (m Module) ClassCount() int {
	return len(m.Classes)
}

// ModuleSummary is the listing row for a module.
type ModuleSummary struct {
	Name      string
	Path      Path
	Functions int
	Classes   int
	Findings  int
}
