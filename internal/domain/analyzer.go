package domain

import (
	"fmt"
	"sort"

	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

// Analyze reports the structural hazards of a module. Findings are sorted by
// line, then symbol.
func Analyze(module m.Module) []m.Finding {
	var findings []m.Finding

	for _, syntaxErr := range module.SyntaxErrors {
		findings = append(findings, m.Finding{
			Kind:   m.FindingSyntaxError,
			Module: module.Name,
			Symbol: module.Name,
			Line:   syntaxErr.Line,
			Detail: fmt.Sprintf("does not parse: %s", syntaxErr.Text),
		})
	}

	for _, fn := range module.Functions {
		findings = append(findings, analyzeFunction(module.Name, fn)...)
	}

	for _, class := range module.Classes {
		findings = append(findings, analyzeClass(module.Name, class)...)
	}

	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}

		return findings[i].Symbol < findings[j].Symbol
	})

	return findings
}

func analyzeFunction(module string, fn m.Function) []m.Finding {
	var findings []m.Finding

	if fn.Returns != m.HintStr {
		findings = append(findings, m.Finding{
			Kind:   m.FindingAnnotationMismatch,
			Module: module,
			Symbol: fn.Name,
			Line:   fn.Line,
			Detail: fmt.Sprintf("declared %s, returns str", fn.Returns),
		})
	}

	findings = append(findings, paramFindings(module, fn.Name, fn.Line, fn.Params)...)
	findings = append(findings, hintFindings(module, fn.Name, fn.Line, fn.Returns)...)

	return findings
}

func analyzeClass(module string, class m.Class) []m.Finding {
	var findings []m.Finding

	findings = append(findings, hintFindings(module, class.Name, class.Line, class.Field.Type)...)

	for _, shadowed := range Shadowed(class) {
		findings = append(findings, m.Finding{
			Kind:   m.FindingDuplicateMethod,
			Module: module,
			Symbol: class.Name + "." + shadowed.Name,
			Line:   shadowed.Line,
			Detail: "redefined later in the class body; this definition is unreachable",
		})
	}

	for _, method := range class.Methods {
		symbol := class.Name + "." + method.Name

		if actual, ok := methodReturnHint(method.Kind); ok && method.Returns != actual {
			findings = append(findings, m.Finding{
				Kind:   m.FindingAnnotationMismatch,
				Module: module,
				Symbol: symbol,
				Line:   method.Line,
				Detail: fmt.Sprintf("declared %s, returns %s", method.Returns, actual),
			})
		}

		findings = append(findings, paramFindings(module, symbol, method.Line, method.Params)...)
		findings = append(findings, hintFindings(module, symbol, method.Line, method.Returns)...)
	}

	return findings
}

func methodReturnHint(kind m.MethodKind) (m.TypeHint, bool) {
	switch kind {
	case m.MethodPredicate:
		return m.HintBool, true
	case m.MethodEcho:
		return m.HintStr, true
	case m.MethodUnknown:
		return "", false
	default:
		return "", false
	}
}

func paramFindings(module, symbol string, line int, params []m.Param) []m.Finding {
	var findings []m.Finding

	seen := make(map[string]struct{}, len(params))
	reported := make(map[string]struct{})

	for _, param := range params {
		findings = append(findings, hintFindings(module, symbol, line, param.Type)...)

		if _, dup := seen[param.Name]; dup {
			if _, done := reported[param.Name]; !done {
				findings = append(findings, m.Finding{
					Kind:   m.FindingDuplicateParameter,
					Module: module,
					Symbol: symbol,
					Line:   line,
					Detail: fmt.Sprintf("parameter %q is declared more than once", param.Name),
				})
				reported[param.Name] = struct{}{}
			}

			continue
		}

		seen[param.Name] = struct{}{}
	}

	return findings
}

func hintFindings(module, symbol string, line int, hint m.TypeHint) []m.Finding {
	if hint.Known() {
		return nil
	}

	return []m.Finding{{
		Kind:   m.FindingUnknownTypeHint,
		Module: module,
		Symbol: symbol,
		Line:   line,
		Detail: fmt.Sprintf("annotation %q is outside the corpus type hints", hint),
	}}
}
