package model

// FindingKind names a structural hazard found in a module.
type FindingKind string

const (
	// FindingAnnotationMismatch marks a declared return type the body never produces.
	FindingAnnotationMismatch FindingKind = "annotation-mismatch"
	// FindingDuplicateMethod marks a method shadowed by a later one of the same name.
	FindingDuplicateMethod FindingKind = "duplicate-method"
	// FindingDuplicateParameter marks a signature repeating a parameter name.
	FindingDuplicateParameter FindingKind = "duplicate-parameter"
	// FindingUnknownTypeHint marks an annotation outside the corpus set.
	FindingUnknownTypeHint FindingKind = "unknown-type-hint"
	// FindingSyntaxError marks source that would fail to import.
	FindingSyntaxError FindingKind = "syntax-error"
)

// Finding is a hazard attached to a symbol.
type Finding struct {
	Kind   FindingKind `yaml:"kind"`
	Module string      `yaml:"module"`
	Symbol string      `yaml:"symbol"`
	Line   int         `yaml:"line"`
	Detail string      `yaml:"detail"`
}

// Property names a verified behavior.
type Property string

const (
	// PropertyFunctionFormat: a free function returns "<a> - <b>".
	PropertyFunctionFormat Property = "function-format"
	// PropertyPredicateTrue: a predicate method returns True.
	PropertyPredicateTrue Property = "predicate-true"
	// PropertyEchoField: an echo method returns the stored field.
	PropertyEchoField Property = "echo-field"
	// PropertyIdempotent: repeated calls give identical outcomes.
	PropertyIdempotent Property = "idempotent"
)

// CheckStatus represents the status of a single check.
type CheckStatus int

const (
	// Passed indicates the property held.
	Passed CheckStatus = iota
	// Failed indicates the property did not hold.
	Failed
)

func (s CheckStatus) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalYAML stores the status by name.
func (s CheckStatus) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML reads a status by name.
func (s *CheckStatus) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	if name == Failed.String() {
		*s = Failed
	} else {
		*s = Passed
	}

	return nil
}

// Check is one verified property on one symbol.
type Check struct {
	Property Property    `yaml:"property"`
	Symbol   string      `yaml:"symbol"`
	Status   CheckStatus `yaml:"status"`
	Expected string      `yaml:"expected,omitempty"`
	Actual   string      `yaml:"actual,omitempty"`
}

// Report holds the verification results for one module.
type Report struct {
	Module   string    `yaml:"module"`
	Source   Path      `yaml:"source"`
	Hash     string    `yaml:"hash,omitempty"`
	Checks   []Check   `yaml:"checks"`
	Findings []Finding `yaml:"findings,omitempty"`
}

// Failed returns the checks that did not pass.
func (r Report) Failed() []Check {
	var failed []Check

	for _, check := range r.Checks {
		if check.Status == Failed {
			failed = append(failed, check)
		}
	}

	return failed
}

// Summary aggregates reports.
type Summary struct {
	Modules  int
	Checks   int
	Passed   int
	Failed   int
	Findings int
}

// Add folds a report into the summary.
func (s *Summary) Add(report Report) {
	s.Modules++
	s.Checks += len(report.Checks)
	failed := len(report.Failed())
	s.Failed += failed
	s.Passed += len(report.Checks) - failed
	s.Findings += len(report.Findings)
}

// PassRate returns passed/checks, or 1 when nothing ran.
func (s Summary) PassRate() float64 {
	if s.Checks == 0 {
		return 1
	}

	return float64(s.Passed) / float64(s.Checks)
}
