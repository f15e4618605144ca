package domain

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

const (
	pyTrue  = "True"
	pyFalse = "False"
	pyNone  = "None"
)

// Render returns the text an f-string interpolation of v produces.
func Render(v m.Value) string {
	return renderAny(v.Data, false)
}

// Repr returns the representation used for items inside containers.
func Repr(v m.Value) string {
	return renderAny(v.Data, true)
}

//nolint:cyclop // one case per runtime representation
func renderAny(data any, quote bool) string {
	switch d := data.(type) {
	case nil:
		return pyNone
	case string:
		if quote {
			return pyQuote(d)
		}

		return d
	case m.Path:
		if quote {
			return "PosixPath(" + pyQuote(string(d)) + ")"
		}

		return string(d)
	case bool:
		if d {
			return pyTrue
		}

		return pyFalse
	case int:
		return strconv.Itoa(d)
	case int64:
		return strconv.FormatInt(d, 10)
	case uint64:
		return strconv.FormatUint(d, 10)
	case float64:
		return renderFloat(d)
	case []string:
		items := make([]string, 0, len(d))
		for _, item := range d {
			items = append(items, pyQuote(item))
		}

		return "[" + strings.Join(items, ", ") + "]"
	case []any:
		items := make([]string, 0, len(d))
		for _, item := range d {
			items = append(items, renderAny(item, true))
		}

		return "[" + strings.Join(items, ", ") + "]"
	case m.Dict:
		items := make([]string, 0, len(d))
		for _, item := range d {
			items = append(items, pyQuote(item.Key)+": "+renderAny(item.Value, true))
		}

		return "{" + strings.Join(items, ", ") + "}"
	case map[string]any:
		return renderAny(sortedDict(d), quote)
	case time.Time:
		if quote {
			return reprTime(d)
		}

		return renderTime(d)
	case uuid.UUID:
		if quote {
			return "UUID(" + pyQuote(d.String()) + ")"
		}

		return d.String()
	default:
		return fmt.Sprint(d)
	}
}

func sortedDict(values map[string]any) m.Dict {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	dict := make(m.Dict, 0, len(keys))
	for _, key := range keys {
		dict = append(dict, m.DictItem{Key: key, Value: values[key]})
	}

	return dict
}

// renderFloat follows repr(float): positional notation for magnitudes in
// [1e-4, 1e16), scientific otherwise.
func renderFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// renderTime follows str(datetime): microseconds only when non-zero, offset
// only for aware values. time.UTC marks a naive datetime.
func renderTime(t time.Time) string {
	var b strings.Builder

	b.WriteString(t.Format("2006-01-02 15:04:05"))

	if micro := t.Nanosecond() / int(time.Microsecond); micro != 0 {
		fmt.Fprintf(&b, ".%06d", micro)
	}

	if t.Location() != time.UTC {
		b.WriteString(t.Format("-07:00"))
	}

	return b.String()
}

// reprTime follows repr(datetime): trailing zero fields are dropped.
func reprTime(t time.Time) string {
	fields := []int{t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute()}

	micro := t.Nanosecond() / int(time.Microsecond)
	if t.Second() != 0 || micro != 0 {
		fields = append(fields, t.Second())
	}

	if micro != 0 {
		fields = append(fields, micro)
	}

	parts := make([]string, 0, len(fields)+1)
	for _, field := range fields {
		parts = append(parts, strconv.Itoa(field))
	}

	if t.Location() != time.UTC {
		_, offset := t.Zone()
		if offset == 0 {
			parts = append(parts, "tzinfo=datetime.timezone.utc")
		} else {
			parts = append(parts, fmt.Sprintf("tzinfo=datetime.timezone(datetime.timedelta(seconds=%d))", offset))
		}
	}

	return "datetime.datetime(" + strings.Join(parts, ", ") + ")"
}

// pyQuote quotes s the way repr(str) does.
func pyQuote(s string) string {
	quote := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder

	b.WriteByte(quote)

	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(quote):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte(quote)

	return b.String()
}
