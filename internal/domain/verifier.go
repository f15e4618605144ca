package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

// Verifier checks the behavioral properties every corpus stub must hold.
type Verifier interface {
	Verify(ctx context.Context, module m.Module) (m.Report, error)
}

type verifier struct{}

// NewVerifier creates a Verifier.
func NewVerifier() Verifier {
	return &verifier{}
}

func (v *verifier) Verify(ctx context.Context, module m.Module) (m.Report, error) {
	report := m.Report{
		Module:   module.Name,
		Checks:   []m.Check{},
		Findings: Analyze(module),
	}

	if module.Source != nil {
		report.Source = module.Source.ShortPath
		report.Hash = module.Source.Hash
	}

	for _, fn := range module.Functions {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		checks, err := verifyFunction(module.Name, fn)
		if err != nil {
			return report, err
		}

		report.Checks = append(report.Checks, checks...)
	}

	for _, class := range module.Classes {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		checks, err := verifyClass(module.Name, class)
		if err != nil {
			return report, err
		}

		report.Checks = append(report.Checks, checks...)
	}

	slog.Debug("verified module", "module", module.Name, "checks", len(report.Checks), "findings", len(report.Findings))

	return report, nil
}

func verifyFunction(module string, fn m.Function) ([]m.Check, error) {
	args := make([]m.Value, 0, len(fn.Params))
	expectedParts := make([]string, 0, len(fn.Params))

	for idx, param := range fn.Params {
		arg := SampleValue(param.Type, sampleSeed(module, fn.Name, param.Name, idx))
		args = append(args, arg)
		expectedParts = append(expectedParts, Render(arg))
	}

	first, err := Call(fn, args...)
	if err != nil {
		return nil, fmt.Errorf("call %s.%s: %w", module, fn.Name, err)
	}

	second, err := Call(fn, args...)
	if err != nil {
		return nil, fmt.Errorf("call %s.%s: %w", module, fn.Name, err)
	}

	expected := strings.Join(expectedParts, " - ")

	return []m.Check{
		newCheck(m.PropertyFunctionFormat, fn.Name, expected, first.String()),
		newCheck(m.PropertyIdempotent, fn.Name, first.String(), second.String()),
	}, nil
}

func verifyClass(module string, class m.Class) ([]m.Check, error) {
	field := SampleValue(class.Field.Type, sampleSeed(module, class.Name, class.Field.Name, 0))

	instance, err := NewInstance(class, field)
	if err != nil {
		return nil, fmt.Errorf("construct %s.%s: %w", module, class.Name, err)
	}

	var checks []m.Check

	for _, method := range Reachable(class) {
		symbol := class.Name + "." + method.Name

		var property m.Property

		var expected string

		switch method.Kind {
		case m.MethodPredicate:
			property, expected = m.PropertyPredicateTrue, pyTrue
		case m.MethodEcho:
			property, expected = m.PropertyEchoField, Render(field)
		case m.MethodUnknown:
			slog.Debug("skipping method with unrecognised body", "module", module, "method", symbol)
			continue
		default:
			continue
		}

		args := make([]m.Value, 0, len(method.Params))
		for idx, param := range method.Params {
			args = append(args, SampleValue(param.Type, sampleSeed(module, symbol, param.Name, idx)))
		}

		first, err := instance.Invoke(method.Name, args...)
		if err != nil {
			return nil, fmt.Errorf("invoke %s.%s: %w", module, symbol, err)
		}

		second, err := instance.Invoke(method.Name, args...)
		if err != nil {
			return nil, fmt.Errorf("invoke %s.%s: %w", module, symbol, err)
		}

		checks = append(checks,
			newCheck(property, symbol, expected, first.String()),
			newCheck(m.PropertyIdempotent, symbol, first.String(), second.String()),
		)
	}

	return checks, nil
}

func newCheck(property m.Property, symbol, expected, actual string) m.Check {
	check := m.Check{
		Property: property,
		Symbol:   symbol,
		Status:   m.Passed,
	}

	if expected != actual {
		check.Status = m.Failed
		check.Expected = expected
		check.Actual = actual
	}

	return check
}

func sampleSeed(module, symbol, param string, idx int) string {
	return fmt.Sprintf("%s.%s.%s.%d", module, symbol, param, idx)
}
