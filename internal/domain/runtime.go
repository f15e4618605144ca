package domain

import (
	"fmt"
	"strings"

	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

// functionSeparator joins the two rendered arguments of a free function.
const functionSeparator = " - "

// Call executes a free function. The result is always a string whatever the
// declared annotation says; only the argument count is checked.
func Call(fn m.Function, args ...m.Value) (m.Outcome, error) {
	if fn.Name == "" {
		return m.Outcome{}, fmt.Errorf("%w: function without a name", ErrInvalidStub)
	}

	if len(args) != len(fn.Params) {
		return m.Outcome{}, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, fn.Name, len(fn.Params), len(args))
	}

	rendered := make([]string, 0, len(args))
	for _, arg := range args {
		rendered = append(rendered, Render(arg))
	}

	text := strings.Join(rendered, functionSeparator)

	return m.Outcome{
		Symbol:   fn.Name,
		Declared: fn.Returns,
		Actual:   m.HintStr,
		Text:     text,
	}, nil
}

// Instance is a constructed class: the single field is set once and never
// changed afterwards.
type Instance struct {
	class    m.Class
	field    m.Value
	dispatch map[string]m.Method
}

// NewInstance constructs class with its one constructor value.
func NewInstance(class m.Class, field m.Value) (*Instance, error) {
	if class.Name == "" {
		return nil, fmt.Errorf("%w: class without a name", ErrInvalidStub)
	}

	return &Instance{
		class:    class,
		field:    field,
		dispatch: DispatchTable(class),
	}, nil
}

// Class returns the declaration the instance was built from.
func (i *Instance) Class() m.Class {
	return i.class
}

// Field returns the stored constructor value.
func (i *Instance) Field() m.Value {
	return i.field
}

// Invoke calls the reachable method named name.
func (i *Instance) Invoke(name string, args ...m.Value) (m.Outcome, error) {
	method, ok := i.dispatch[name]
	if !ok {
		return m.Outcome{}, fmt.Errorf("%w: %s.%s", ErrUnknownMethod, i.class.Name, name)
	}

	symbol := i.class.Name + "." + method.Name

	if len(args) != len(method.Params) {
		return m.Outcome{}, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, symbol, len(method.Params), len(args))
	}

	switch method.Kind {
	case m.MethodPredicate:
		result := true

		return m.Outcome{
			Symbol:   symbol,
			Declared: method.Returns,
			Actual:   m.HintBool,
			Text:     pyTrue,
			Bool:     &result,
		}, nil
	case m.MethodEcho:
		return m.Outcome{
			Symbol:   symbol,
			Declared: method.Returns,
			Actual:   m.HintStr,
			Text:     Render(i.field),
		}, nil
	case m.MethodUnknown:
		return m.Outcome{}, fmt.Errorf("%w: %s has an unrecognised body", ErrInvalidStub, symbol)
	default:
		return m.Outcome{}, fmt.Errorf("%w: %s has kind %q", ErrInvalidStub, symbol, method.Kind)
	}
}

// DispatchTable maps method names to the definition a call reaches. A later
// definition replaces an earlier one of the same name.
func DispatchTable(class m.Class) map[string]m.Method {
	table := make(map[string]m.Method, len(class.Methods))
	for _, method := range class.Methods {
		table[method.Name] = method
	}

	return table
}

// Shadowed returns the definitions no call can reach, in declaration order.
func Shadowed(class m.Class) []m.Method {
	var shadowed []m.Method

	for idx, method := range class.Methods {
		if !isLastDefinition(class.Methods, idx) {
			shadowed = append(shadowed, method)
		}
	}

	return shadowed
}

// Reachable returns the methods in the dispatch table, in declaration order of
// their winning definitions.
func Reachable(class m.Class) []m.Method {
	reachable := make([]m.Method, 0, len(class.Methods))

	for idx, method := range class.Methods {
		if isLastDefinition(class.Methods, idx) {
			reachable = append(reachable, method)
		}
	}

	return reachable
}

func isLastDefinition(methods []m.Method, idx int) bool {
	for _, later := range methods[idx+1:] {
		if later.Name == methods[idx].Name {
			return false
		}
	}

	return true
}
