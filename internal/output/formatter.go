// Package output renders calculation results for the CLI and shapes them
// for the API.
package output

import (
	"github.com/expatfin/rentenscore/internal/domain"
)

// Formatter renders a result in one output format.
type Formatter interface {
	Name() string
	Format(result *domain.RetirementResult) ([]byte, error)
}

// GetFormatterByName returns the formatter for the given name, or nil when
// the name is unknown.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console":
		return &ConsoleFormatter{}
	case "json":
		return &JSONFormatter{}
	default:
		return nil
	}
}

// FormatterNames lists the supported format names.
func FormatterNames() []string {
	return []string{"console", "json"}
}
