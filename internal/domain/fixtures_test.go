package domain_test

import (
	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

// corpusModule mirrors the shape of a generated corpus file, hazards included.
func corpusModule() m.Module {
	return m.Module{
		Name:   "module_0",
		Source: &m.File{FullPath: "/corpus/module_0.py", ShortPath: "module_0.py", Hash: "abc123"},
		Doc:    "Module 0 for testing.",
		SyntaxErrors: []m.SyntaxError{
			{Line: 3, Text: "import randomfrom pathlib import Path"},
		},
		Functions: []m.Function{
			{
				Name:    "process_data_0",
				Params:  []m.Param{{Name: "config", Type: m.HintStr}, {Name: "count", Type: m.HintInt}},
				Returns: m.HintDict,
				Line:    10,
			},
			{
				Name:    "format_output_0",
				Params:  []m.Param{{Name: "path", Type: m.HintPath}, {Name: "when", Type: m.HintDatetime}},
				Returns: m.HintStr,
				Line:    14,
			},
			{
				Name:    "deserialize_json_0",
				Params:  []m.Param{{Name: "metadata", Type: m.HintBool}, {Name: "metadata", Type: m.HintBool}},
				Returns: m.HintList,
				Line:    18,
			},
		},
		Classes: []m.Class{
			{
				Name:  "ConfigManager0",
				Field: m.Param{Name: "payload", Type: m.HintInt},
				Line:  22,
				Methods: []m.Method{
					{
						Name:    "validate",
						Kind:    m.MethodPredicate,
						Params:  []m.Param{{Name: "options", Type: m.HintUUID}},
						Returns: m.HintBool,
						Line:    26,
					},
					{
						Name:    "validate",
						Kind:    m.MethodEcho,
						Returns: m.HintStr,
						Line:    29,
					},
					{
						Name:    "serialize",
						Kind:    m.MethodPredicate,
						Params:  []m.Param{{Name: "items", Type: m.HintList}},
						Returns: m.HintStr,
						Line:    32,
					},
				},
			},
		},
	}
}

func configManager() m.Class {
	return m.Class{
		Name:  "ConfigManager0",
		Field: m.Param{Name: "payload", Type: m.HintInt},
		Methods: []m.Method{
			{Name: "validate", Kind: m.MethodPredicate, Params: []m.Param{{Name: "data", Type: m.HintStr}}, Returns: m.HintBool},
			{Name: "serialize", Kind: m.MethodEcho, Returns: m.HintStr},
		},
	}
}
