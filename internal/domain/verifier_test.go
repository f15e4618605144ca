package domain_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stubcorpus.dev/pkg/stubcorpus/internal/domain"
	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

func TestVerifier_Verify(t *testing.T) {
	report, err := domain.NewVerifier().Verify(context.Background(), corpusModule())
	require.NoError(t, err)

	assert.Equal(t, "module_0", report.Module)
	assert.Equal(t, m.Path("module_0.py"), report.Source)
	assert.Equal(t, "abc123", report.Hash)
	assert.Empty(t, report.Failed())
	assert.Len(t, report.Findings, 6)

	type row struct {
		Property m.Property
		Symbol   string
	}

	got := make([]row, 0, len(report.Checks))
	for _, check := range report.Checks {
		assert.Equal(t, m.Passed, check.Status, "%s %s", check.Property, check.Symbol)
		assert.Empty(t, check.Expected)
		assert.Empty(t, check.Actual)
		got = append(got, row{check.Property, check.Symbol})
	}

	want := []row{
		{m.PropertyFunctionFormat, "process_data_0"},
		{m.PropertyIdempotent, "process_data_0"},
		{m.PropertyFunctionFormat, "format_output_0"},
		{m.PropertyIdempotent, "format_output_0"},
		{m.PropertyFunctionFormat, "deserialize_json_0"},
		{m.PropertyIdempotent, "deserialize_json_0"},
		{m.PropertyEchoField, "ConfigManager0.validate"},
		{m.PropertyIdempotent, "ConfigManager0.validate"},
		{m.PropertyPredicateTrue, "ConfigManager0.serialize"},
		{m.PropertyIdempotent, "ConfigManager0.serialize"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("checks mismatch (-want +got):\n%s", diff)
	}
}

func TestVerifier_Reproducible(t *testing.T) {
	verifier := domain.NewVerifier()

	first, err := verifier.Verify(context.Background(), corpusModule())
	require.NoError(t, err)

	second, err := verifier.Verify(context.Background(), corpusModule())
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("reports differ (-first +second):\n%s", diff)
	}
}

func TestVerifier_SkipsUnknownBodies(t *testing.T) {
	module := m.Module{
		Name: "odd",
		Classes: []m.Class{{
			Name:  "Odd",
			Field: m.Param{Name: "x", Type: m.HintStr},
			Methods: []m.Method{
				{Name: "run", Kind: m.MethodUnknown, Returns: m.HintInt},
				{Name: "show", Kind: m.MethodEcho, Returns: m.HintStr},
			},
		}},
	}

	report, err := domain.NewVerifier().Verify(context.Background(), module)
	require.NoError(t, err)
	require.Len(t, report.Checks, 2)
	assert.Equal(t, m.PropertyEchoField, report.Checks[0].Property)
	assert.Equal(t, m.Path(""), report.Source)
}

func TestVerifier_EmptyModule(t *testing.T) {
	report, err := domain.NewVerifier().Verify(context.Background(), m.Module{Name: "empty"})
	require.NoError(t, err)

	assert.NotNil(t, report.Checks)
	assert.Empty(t, report.Checks)
	assert.Empty(t, report.Findings)
}

func TestVerifier_InvalidStub(t *testing.T) {
	module := m.Module{Name: "broken", Functions: []m.Function{{Params: []m.Param{{Name: "a", Type: m.HintStr}}}}}

	_, err := domain.NewVerifier().Verify(context.Background(), module)
	require.ErrorIs(t, err, domain.ErrInvalidStub)
}

func TestVerifier_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := domain.NewVerifier().Verify(ctx, corpusModule())
	require.ErrorIs(t, err, context.Canceled)
}
