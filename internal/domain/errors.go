package domain

import "errors"

var (
	// ErrNotFound is returned when a module, function, class or method is missing.
	ErrNotFound = errors.New("not found")
	// ErrArity is returned when a stub is called with the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")
	// ErrUnknownMethod is returned when an instance has no method of that name.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrInvalidStub is returned for declarations the corpus template cannot produce.
	ErrInvalidStub = errors.New("invalid stub")
	// ErrDuplicateModule is returned when two loaded files share a module name.
	ErrDuplicateModule = errors.New("duplicate module")
	// ErrChecksFailed is returned by Check when at least one property did not hold.
	ErrChecksFailed = errors.New("checks failed")
	// ErrInvalidValue is returned when an argument cannot be parsed for its type hint.
	ErrInvalidValue = errors.New("invalid value")
)
