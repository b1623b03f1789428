package diagnostic

import (
	"github.com/untillpro/goutils/logger"
)

// Log prints every diagnostic at the logger level matching its severity.
// Infos are only shown in verbose mode.
func (d *Diagnostics) Log() {
	for _, diag := range d.All() {
		switch diag.Severity {
		case SeverityError:
			logger.Error(diag.String())
		case SeverityWarning:
			logger.Warning(diag.String())
		default:
			logger.Verbose(diag.String())
		}
	}
}

// Codes returns the codes of ds in order.
func Codes(ds []Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}

	return out
}

// Count returns the number of diagnostics with the given code.
func (d *Diagnostics) Count(code string) int {
	n := 0

	for _, diag := range d.All() {
		if diag.Code == code {
			n++
		}
	}

	return n
}
