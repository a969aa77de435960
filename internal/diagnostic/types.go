package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"aoc2023/internal/common"
)

// Diagnostics holds all diagnostic information from a parse.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Err is the failure class, matched with errors.Is.
	Err error
	// Message is the human-readable description.
	Message string
	// Section names the input section this relates to (if any).
	Section string
	// Line is the 1-based input line this relates to, or 0.
	Line int
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(err error, section string, line int, format string, args ...any) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Err:      err,
		Message:  fmt.Sprintf(format, args...),
		Section:  section,
		Line:     line,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(section string, line int, format string, args ...any) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
		Section:  section,
		Line:     line,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Error returns a combined error from all error diagnostics, or nil if there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		errs = append(errs, e.AsError())
	}

	return errors.Join(errs...)
}

// AsError wraps the diagnostic's failure class with its location and message.
func (d Diagnostic) AsError() error {
	if d.Err == nil {
		return errors.New(d.String())
	}

	return fmt.Errorf("%w: %s", d.Err, d.String())
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Section != "" {
		prefix = append(prefix, "["+d.Section+"]")
	}

	if d.Line > 0 {
		prefix = append(prefix, fmt.Sprintf("line %d", d.Line))
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + d.Message
	}

	return d.Message
}
