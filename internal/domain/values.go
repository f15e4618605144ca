package domain

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

// datetimeLayouts are tried in order. Only the first carries a zone; the
// others parse as naive values in time.UTC.
var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999",
	"2006-01-02T15:04:05.999999",
	"2006-01-02",
}

// utcOffset is an aware zero offset, distinct from the naive time.UTC.
var utcOffset = time.FixedZone("UTC", 0)

// sampleEpoch anchors sampled datetimes so checks are reproducible.
var sampleEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseValue converts command-line text into a value of the given hint.
// Unknown hints are read as plain strings.
//
//nolint:cyclop // one case per type hint
func ParseValue(hint m.TypeHint, raw string) (m.Value, error) {
	value := m.Value{Type: hint}

	switch hint {
	case m.HintInt:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return m.Value{}, fmt.Errorf("%w: %s %q: %w", ErrInvalidValue, hint, raw, err)
		}

		value.Data = n
	case m.HintBool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return m.Value{}, fmt.Errorf("%w: %s %q: %w", ErrInvalidValue, hint, raw, err)
		}

		value.Data = b
	case m.HintList:
		items, err := parseList(raw)
		if err != nil {
			return m.Value{}, fmt.Errorf("%w: %s %q: %w", ErrInvalidValue, hint, raw, err)
		}

		value.Data = items
	case m.HintDict:
		dict, err := parseDict(raw)
		if err != nil {
			return m.Value{}, fmt.Errorf("%w: %s %q: %w", ErrInvalidValue, hint, raw, err)
		}

		value.Data = dict
	case m.HintPath:
		value.Data = m.Path(raw)
	case m.HintDatetime:
		t, err := parseDatetime(raw)
		if err != nil {
			return m.Value{}, fmt.Errorf("%w: %s %q: %w", ErrInvalidValue, hint, raw, err)
		}

		value.Data = t
	case m.HintUUID:
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return m.Value{}, fmt.Errorf("%w: %s %q: %w", ErrInvalidValue, hint, raw, err)
		}

		value.Data = id
	case m.HintNone:
		value.Data = nil
	default:
		value.Data = raw
	}

	return value, nil
}

func parseList(raw string) ([]string, error) {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "[") {
		text = "[" + text + "]"
	}

	var items []string
	if err := yaml.Unmarshal([]byte(text), &items); err != nil {
		return nil, err
	}

	if items == nil {
		items = []string{}
	}

	return items, nil
}

func parseDict(raw string) (m.Dict, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return m.Dict{}, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return nil, err
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 || root.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping such as {key: value}")
	}

	value, err := nodeValue(root.Content[0])
	if err != nil {
		return nil, err
	}

	dict, ok := value.(m.Dict)
	if !ok {
		return nil, fmt.Errorf("expected a mapping")
	}

	return dict, nil
}

// nodeValue keeps mapping order, which a decode into map[string]any would lose.
func nodeValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		dict := make(m.Dict, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			item, err := nodeValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}

			dict = append(dict, m.DictItem{Key: node.Content[i].Value, Value: item})
		}

		return dict, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))

		for _, child := range node.Content {
			item, err := nodeValue(child)
			if err != nil {
				return nil, err
			}

			items = append(items, item)
		}

		return items, nil
	case yaml.AliasNode:
		return nodeValue(node.Alias)
	default:
		var scalar any
		if err := node.Decode(&scalar); err != nil {
			return nil, err
		}

		return scalar, nil
	}
}

func parseDatetime(raw string) (time.Time, error) {
	text := strings.TrimSpace(raw)

	var lastErr error

	for _, layout := range datetimeLayouts {
		t, err := time.Parse(layout, text)
		if err == nil {
			if layout == time.RFC3339Nano && t.Location() == time.UTC {
				t = t.In(utcOffset)
			}

			return t, nil
		}

		lastErr = err
	}

	return time.Time{}, lastErr
}

// SampleValue returns a deterministic value of the hint derived from seed.
func SampleValue(hint m.TypeHint, seed string) m.Value {
	n := seedNumber(seed)
	value := m.Value{Type: hint}

	switch hint {
	case m.HintInt:
		value.Data = int64(n % 1000)
	case m.HintBool:
		value.Data = n%2 == 0
	case m.HintList:
		value.Data = []string{seed, seed + "-" + strconv.FormatUint(n%10, 10)}
	case m.HintDict:
		value.Data = m.Dict{
			{Key: "name", Value: seed},
			{Key: "count", Value: int64(n % 100)},
		}
	case m.HintPath:
		value.Data = m.Path("data/" + seed + ".txt")
	case m.HintDatetime:
		value.Data = sampleEpoch.Add(time.Duration(n%8760) * time.Hour)
	case m.HintUUID:
		value.Data = uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))
	case m.HintNone:
		value.Data = nil
	default:
		value.Data = seed
	}

	return value
}

func seedNumber(seed string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))

	return h.Sum64()
}
