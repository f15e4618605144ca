package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stubcorpus.dev/pkg/stubcorpus/internal/domain"
	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name string
		hint m.TypeHint
		raw  string
		want any
	}{
		{"str", m.HintStr, "hello world", "hello world"},
		{"int", m.HintInt, " 42 ", int64(42)},
		{"bool", m.HintBool, "True", true},
		{"bool short", m.HintBool, "f", false},
		{"list flow", m.HintList, "[a, b]", []string{"a", "b"}},
		{"list bare", m.HintList, "a, b", []string{"a", "b"}},
		{"empty list", m.HintList, "[]", []string{}},
		{"dict", m.HintDict, "{b: 1, a: x}", m.Dict{{Key: "b", Value: 1}, {Key: "a", Value: "x"}}},
		{"nested dict", m.HintDict, "{tags: [x, 2]}", m.Dict{{Key: "tags", Value: []any{"x", 2}}}},
		{"empty dict", m.HintDict, "", m.Dict{}},
		{"path", m.HintPath, "data/file.txt", m.Path("data/file.txt")},
		{"datetime space", m.HintDatetime, "2024-03-05 14:30:00", time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)},
		{"datetime rfc3339", m.HintDatetime, "2024-03-05T14:30:00Z", time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)},
		{"date", m.HintDatetime, "2024-03-05", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{"uuid", m.HintUUID, "12345678-1234-5678-1234-567812345678", uuid.MustParse("12345678-1234-5678-1234-567812345678")},
		{"none", m.HintNone, "anything", nil},
		{"unknown hint", m.TypeHint("Foo"), "raw text", "raw text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseValue(tt.hint, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.hint, got.Type)

			if want, ok := tt.want.(time.Time); ok {
				gotTime, isTime := got.Data.(time.Time)
				require.True(t, isTime)
				assert.True(t, want.Equal(gotTime), "want %v, got %v", want, gotTime)

				return
			}

			assert.Equal(t, tt.want, got.Data)
		})
	}
}

func TestParseValue_Invalid(t *testing.T) {
	tests := []struct {
		name string
		hint m.TypeHint
		raw  string
	}{
		{"int", m.HintInt, "forty"},
		{"bool", m.HintBool, "maybe"},
		{"dict from list", m.HintDict, "[1, 2]"},
		{"dict syntax", m.HintDict, "{a: [}"},
		{"datetime", m.HintDatetime, "yesterday"},
		{"uuid", m.HintUUID, "not-a-uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseValue(tt.hint, tt.raw)
			require.ErrorIs(t, err, domain.ErrInvalidValue)
		})
	}
}

func TestParseValue_RendersAsPython(t *testing.T) {
	value, err := domain.ParseValue(m.HintDict, "{name: x, count: 3, ok: true}")
	require.NoError(t, err)

	assert.Equal(t, "{'name': 'x', 'count': 3, 'ok': True}", domain.Render(value))
}

func TestSampleValue_Deterministic(t *testing.T) {
	for _, hint := range append(m.KnownHints, m.HintNone, m.TypeHint("Foo")) {
		t.Run(string(hint), func(t *testing.T) {
			first := domain.SampleValue(hint, "module_0.fn.param.0")
			second := domain.SampleValue(hint, "module_0.fn.param.0")

			assert.Equal(t, first, second)
			assert.Equal(t, hint, first.Type)
		})
	}
}

func TestSampleValue_Types(t *testing.T) {
	seed := "module_0.ConfigManager0.payload.0"

	assert.IsType(t, "", domain.SampleValue(m.HintStr, seed).Data)
	assert.IsType(t, int64(0), domain.SampleValue(m.HintInt, seed).Data)
	assert.IsType(t, true, domain.SampleValue(m.HintBool, seed).Data)
	assert.IsType(t, m.Dict{}, domain.SampleValue(m.HintDict, seed).Data)
	assert.IsType(t, m.Path(""), domain.SampleValue(m.HintPath, seed).Data)
	assert.Nil(t, domain.SampleValue(m.HintNone, seed).Data)

	list, ok := domain.SampleValue(m.HintList, seed).Data.([]string)
	require.True(t, ok)
	assert.Len(t, list, 2)
	assert.Equal(t, seed, list[0])

	id, ok := domain.SampleValue(m.HintUUID, seed).Data.(uuid.UUID)
	require.True(t, ok)
	assert.Equal(t, uuid.Version(5), id.Version())

	when, ok := domain.SampleValue(m.HintDatetime, seed).Data.(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2024, when.Year())
	assert.Equal(t, time.UTC, when.Location())
}

func TestSampleValue_SeedsDiffer(t *testing.T) {
	a := domain.SampleValue(m.HintUUID, "module_0.a.x.0")
	b := domain.SampleValue(m.HintUUID, "module_0.b.x.0")

	assert.NotEqual(t, a.Data, b.Data)
}
