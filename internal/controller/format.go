package controller

import (
	"fmt"
	"strings"

	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

func formatParams(params []m.Param) string {
	parts := make([]string, 0, len(params))

	for _, param := range params {
		if param.Type == "" {
			parts = append(parts, param.Name)
			continue
		}

		parts = append(parts, fmt.Sprintf("%s: %s", param.Name, param.Type))
	}

	return strings.Join(parts, ", ")
}

func formatSignature(name string, params []m.Param, returns m.TypeHint) string {
	return fmt.Sprintf("%s(%s) -> %s", name, formatParams(params), returns)
}

func firstLine(doc string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(doc), "\n")

	return strings.TrimSpace(line)
}

func formatPercent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}
