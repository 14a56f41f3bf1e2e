package output

import (
	"encoding/json"
	"io"

	"customer-pricing/core/quote"
)

// JSONFormatter renders a quote as indented JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render encodes the quote
func (f *JSONFormatter) Render(w io.Writer, q *quote.Quote) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(q)
}
