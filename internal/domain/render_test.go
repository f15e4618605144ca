package domain_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stubcorpus.dev/pkg/stubcorpus/internal/domain"
	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

func TestRender(t *testing.T) {
	id := uuid.MustParse("12345678-1234-5678-1234-567812345678")
	when := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value m.Value
		str   string
		repr  string
	}{
		{"str", m.Value{Type: m.HintStr, Data: "hello"}, "hello", "'hello'"},
		{"str with quote", m.Value{Type: m.HintStr, Data: "it's"}, "it's", `"it's"`},
		{"str with both quotes", m.Value{Type: m.HintStr, Data: `a'b"c`}, `a'b"c`, `'a\'b"c'`},
		{"str with newline", m.Value{Type: m.HintStr, Data: "a\nb"}, "a\nb", `'a\nb'`},
		{"int", m.Value{Type: m.HintInt, Data: int64(42)}, "42", "42"},
		{"negative int", m.Value{Type: m.HintInt, Data: -7}, "-7", "-7"},
		{"bool true", m.Value{Type: m.HintBool, Data: true}, "True", "True"},
		{"bool false", m.Value{Type: m.HintBool, Data: false}, "False", "False"},
		{"none", m.Value{Type: m.HintNone}, "None", "None"},
		{"list", m.Value{Type: m.HintList, Data: []string{"a", "b"}}, "['a', 'b']", "['a', 'b']"},
		{"empty list", m.Value{Type: m.HintList, Data: []string{}}, "[]", "[]"},
		{
			"dict keeps order",
			m.Value{Type: m.HintDict, Data: m.Dict{{Key: "name", Value: "x"}, {Key: "count", Value: int64(3)}}},
			"{'name': 'x', 'count': 3}",
			"{'name': 'x', 'count': 3}",
		},
		{
			"nested dict",
			m.Value{Type: m.HintDict, Data: m.Dict{{Key: "tags", Value: []any{"a", 1, nil, true}}}},
			"{'tags': ['a', 1, None, True]}",
			"{'tags': ['a', 1, None, True]}",
		},
		{
			"go map sorted",
			m.Value{Type: m.HintDict, Data: map[string]any{"b": 1, "a": "x"}},
			"{'a': 'x', 'b': 1}",
			"{'a': 'x', 'b': 1}",
		},
		{"float", m.Value{Data: 1.5}, "1.5", "1.5"},
		{"whole float", m.Value{Data: 2.0}, "2.0", "2.0"},
		{"large float stays positional", m.Value{Data: 1234567.5}, "1234567.5", "1234567.5"},
		{"million float", m.Value{Data: 1e6}, "1000000.0", "1000000.0"},
		{"float below 1e16", m.Value{Data: 1e15}, "1000000000000000.0", "1000000000000000.0"},
		{"float at 1e16", m.Value{Data: 1e16}, "1e+16", "1e+16"},
		{"small float", m.Value{Data: 0.0001}, "0.0001", "0.0001"},
		{"tiny float", m.Value{Data: 0.00001}, "1e-05", "1e-05"},
		{"negative float", m.Value{Data: -2.5e-7}, "-2.5e-07", "-2.5e-07"},
		{"zero float", m.Value{Data: 0.0}, "0.0", "0.0"},
		{"inf", m.Value{Data: math.Inf(1)}, "inf", "inf"},
		{"negative inf", m.Value{Data: math.Inf(-1)}, "-inf", "-inf"},
		{"nan", m.Value{Data: math.NaN()}, "nan", "nan"},
		{
			"aware utc datetime",
			m.Value{Type: m.HintDatetime, Data: time.Date(2024, time.March, 5, 14, 30, 0, 0, time.FixedZone("UTC", 0))},
			"2024-03-05 14:30:00+00:00",
			"datetime.datetime(2024, 3, 5, 14, 30, tzinfo=datetime.timezone.utc)",
		},
		{"path", m.Value{Type: m.HintPath, Data: m.Path("data/x.txt")}, "data/x.txt", "PosixPath('data/x.txt')"},
		{"uuid", m.Value{Type: m.HintUUID, Data: id}, id.String(), "UUID('" + id.String() + "')"},
		{"datetime", m.Value{Type: m.HintDatetime, Data: when}, "2024-03-05 14:30:00", "datetime.datetime(2024, 3, 5, 14, 30)"},
		{
			"datetime with microseconds",
			m.Value{Type: m.HintDatetime, Data: when.Add(123456 * time.Microsecond)},
			"2024-03-05 14:30:00.123456",
			"datetime.datetime(2024, 3, 5, 14, 30, 0, 123456)",
		},
		{
			"datetime with seconds",
			m.Value{Type: m.HintDatetime, Data: when.Add(9 * time.Second)},
			"2024-03-05 14:30:09",
			"datetime.datetime(2024, 3, 5, 14, 30, 9)",
		},
		{
			"aware datetime",
			m.Value{Type: m.HintDatetime, Data: time.Date(2024, time.March, 5, 14, 30, 0, 0, time.FixedZone("", 3600))},
			"2024-03-05 14:30:00+01:00",
			"datetime.datetime(2024, 3, 5, 14, 30, tzinfo=datetime.timezone(datetime.timedelta(seconds=3600)))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.str, domain.Render(tt.value))
			assert.Equal(t, tt.repr, domain.Repr(tt.value))
		})
	}
}

func TestRender_ContainerItemsUseRepr(t *testing.T) {
	id := uuid.MustParse("12345678-1234-5678-1234-567812345678")

	value := m.Value{Type: m.HintDict, Data: m.Dict{
		{Key: "path", Value: m.Path("a.txt")},
		{Key: "id", Value: id},
	}}

	assert.Equal(t,
		"{'path': PosixPath('a.txt'), 'id': UUID('12345678-1234-5678-1234-567812345678')}",
		domain.Render(value),
	)
}

func TestRender_ParsedValues(t *testing.T) {
	tests := []struct {
		name string
		hint m.TypeHint
		raw  string
		want string
	}{
		{"dict with large float", m.HintDict, "{k: 1234567.5}", "{'k': 1234567.5}"},
		{"dict with whole float", m.HintDict, "{k: 1000000.0}", "{'k': 1000000.0}"},
		{"dict with infinity", m.HintDict, "{k: .inf}", "{'k': inf}"},
		{"zulu datetime is aware", m.HintDatetime, "2024-01-01T10:00:00Z", "2024-01-01 10:00:00+00:00"},
		{"offset datetime", m.HintDatetime, "2024-01-01T10:00:00+02:00", "2024-01-01 10:00:00+02:00"},
		{"zoneless datetime is naive", m.HintDatetime, "2024-01-01 10:00:00", "2024-01-01 10:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := domain.ParseValue(tt.hint, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, domain.Render(value))
		})
	}
}
