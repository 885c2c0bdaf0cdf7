package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"setup-mirrors/internal/common"
)

// Diagnostics holds all diagnostic information from a pairing pass.
type Diagnostics struct {
	Errors   []Diagnostic `yaml:"errors,omitempty"`
	Warnings []Diagnostic `yaml:"warnings,omitempty"`
	Infos    []Diagnostic `yaml:"infos,omitempty"`
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity `yaml:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `yaml:"code"`
	// Message is the human-readable description.
	Message string `yaml:"message"`
	// RecordID identifies the catalog record this relates to (if any).
	RecordID string `yaml:"record,omitempty"`
	// Line is the 1-based line of the record in the input table (if known).
	Line int `yaml:"line,omitempty"`
	// Suggestions are potential fixes or alternatives.
	Suggestions []string `yaml:"suggestions,omitempty"`
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// MarshalYAML renders the severity by name.
func (s DiagnosticSeverity) MarshalYAML() (any, error) {
	return s.String(), nil
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, recordID string, line int) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		RecordID: recordID,
		Line:     line,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, recordID string, line int, suggestions ...string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:    DiagnosticWarning,
		Code:        code,
		Message:     message,
		RecordID:    recordID,
		Line:        line,
		Suggestions: suggestions,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, recordID string, line int) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		RecordID: recordID,
		Line:     line,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// ByCode returns every diagnostic with the given code, errors first.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var out []Diagnostic

	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Code == code {
				out = append(out, diag)
			}
		}
	}

	return out
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Line > 0 {
		prefix = append(prefix, fmt.Sprintf("line %d", d.Line))
	}

	if d.RecordID != "" {
		prefix = append(prefix, "["+d.RecordID+"]")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
