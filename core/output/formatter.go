// Package output provides output formatting interfaces.
// This package produces human and machine-readable quote reports.
package output

import (
	"fmt"
	"io"
	"sort"

	"customer-pricing/core/quote"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable console report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatPDF is a paginated PDF document
	FormatPDF Format = "pdf"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given quote
	Render(w io.Writer, q *quote.Quote) error
}

// Registry maps formats to formatters
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates a registry holding formatters
func NewRegistry(formatters ...Formatter) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	for _, f := range formatters {
		_ = r.Register(f)
	}
	return r
}

// DefaultRegistry returns the console, JSON and PDF formatters
func DefaultRegistry() *Registry {
	return NewRegistry(NewConsoleFormatter(false), NewJSONFormatter(), NewPDFFormatter())
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) error {
	if _, exists := r.formatters[formatter.Format()]; exists {
		return fmt.Errorf("formatter already registered: %s", formatter.Format())
	}
	r.formatters[formatter.Format()] = formatter
	return nil
}

// GetFormatter returns a formatter for a format type
func (r *Registry) GetFormatter(format Format) (Formatter, bool) {
	f, ok := r.formatters[format]
	return f, ok
}

// Formats lists the registered formats in sorted order
func (r *Registry) Formats() []Format {
	formats := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}
