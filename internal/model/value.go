package model

// Value is an argument handed to a stub. Data holds the Go representation of
// the hint: string, int64, bool, []string, Dict, Path, time.Time,
// uuid.UUID or nil.
type Value struct {
	Type TypeHint
	Data any
}

// Outcome is the result of calling a stub function or method.
type Outcome struct {
	Symbol   string
	Declared TypeHint
	Actual   TypeHint
	Text     string
	Bool     *bool
}

// Conforms reports whether the runtime type matches the declared annotation.
func (o Outcome) Conforms() bool {
	return o.Declared == o.Actual
}

// String returns the outcome as the corpus would print it.
func (o Outcome) String() string {
	if o.Bool != nil {
		if *o.Bool {
			return "True"
		}

		return "False"
	}

	return o.Text
}

// DictItem is one key/value pair of a Dict.
type DictItem struct {
	Key   string
	Value any
}

// Dict is an insertion-ordered mapping, the Go form of dict[str, Any].
type Dict []DictItem

// Get returns the value stored under key.
func (d Dict) Get(key string) (any, bool) {
	for _, item := range d {
		if item.Key == key {
			return item.Value, true
		}
	}

	return nil, false
}
