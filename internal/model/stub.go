package model

// TypeHint is the annotation attached to a parameter or return value.
type TypeHint string

// Type hints used throughout the corpus.
const (
	HintStr      TypeHint = "str"
	HintInt      TypeHint = "int"
	HintBool     TypeHint = "bool"
	HintDict     TypeHint = "dict[str, Any]"
	HintList     TypeHint = "list[str]"
	HintPath     TypeHint = "Path"
	HintDatetime TypeHint = "datetime"
	HintUUID     TypeHint = "UUID"
	HintNone     TypeHint = "None"
)

// KnownHints lists the annotations the corpus draws from.
var KnownHints = []TypeHint{
	HintStr,
	HintInt,
	HintBool,
	HintDict,
	HintList,
	HintPath,
	HintDatetime,
	HintUUID,
}

// Known reports whether the hint is one of the corpus annotations.
func (h TypeHint) Known() bool {
	for _, known := range KnownHints {
		if h == known {
			return true
		}
	}

	return h == HintNone
}

func (h TypeHint) String() string {
	return string(h)
}

// Param is a named, annotated parameter.
type Param struct {
	Name string   `yaml:"name"`
	Type TypeHint `yaml:"type"`
}

// Function is a free function of the corpus template.
type Function struct {
	Name    string
	Params  []Param
	Returns TypeHint
	Doc     string
	Line    int
}

// MethodKind classifies a method body.
type MethodKind string

const (
	// MethodPredicate returns True unconditionally.
	MethodPredicate MethodKind = "predicate"
	// MethodEcho returns the stored field as a string.
	MethodEcho MethodKind = "echo"
	// MethodUnknown is any body the corpus template does not produce.
	MethodUnknown MethodKind = "unknown"
)

// Method is a class method. Params exclude the receiver.
type Method struct {
	Name    string
	Kind    MethodKind
	Params  []Param
	Returns TypeHint
	Doc     string
	Line    int
}

// Class stores exactly one constructor value in Field.
type Class struct {
	Name    string
	Field   Param
	Methods []Method
	Doc     string
	Line    int
}
