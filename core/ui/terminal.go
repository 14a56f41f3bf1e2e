// Package ui - Terminal user interface
// Colored CLI output and aligned text tables.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
	err     error
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:     out,
		noColor: noColor,
	}
}

// Err returns the first write error encountered, if any
func (w *Writer) Err() error {
	return w.err
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Print writes formatted text
func (w *Writer) Print(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	w.Print(format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println("%s", w.color(Bold+Cyan, title+":"))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s", w.color(Green, "✓ ")+msg)
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s", w.color(Yellow, "⚠ ")+msg)
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s", w.color(Red, "✗ ")+msg)
}

// Table renders aligned columns
type Table struct {
	w       *Writer
	indent  string
	headers []string
	rows    [][]string
	widths  []int
	right   map[int]bool
	total   []string
}

// NewTable creates a table. Passing no headers renders rows only.
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	return &Table{
		w:       w,
		indent:  "  ",
		headers: headers,
		widths:  widths,
		right:   map[int]bool{},
	}
}

// AlignRight right-aligns the given columns
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		t.right[c] = true
	}
	return t
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	for len(t.widths) < len(cells) {
		t.widths = append(t.widths, 0)
	}
	row := make([]string, len(t.widths))
	copy(row, cells)
	for i, cell := range row {
		if n := utf8.RuneCountInString(cell); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

// SetTotal sets a bold row rendered below a separator
func (t *Table) SetTotal(cells ...string) {
	t.AddRow(cells...)
	t.total = t.rows[len(t.rows)-1]
	t.rows = t.rows[:len(t.rows)-1]
}

func (t *Table) pad(i int, cell string) string {
	gap := t.widths[i] - utf8.RuneCountInString(cell)
	if gap <= 0 {
		return cell
	}
	if t.right[i] {
		return strings.Repeat(" ", gap) + cell
	}
	return cell + strings.Repeat(" ", gap)
}

func (t *Table) line(row []string) string {
	cells := make([]string, len(t.widths))
	for i := range t.widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		cells[i] = t.pad(i, cell)
	}
	return strings.TrimRight(t.indent+strings.Join(cells, " │ "), " ")
}

func (t *Table) separator() string {
	parts := make([]string, len(t.widths))
	for i, w := range t.widths {
		parts[i] = strings.Repeat("─", w)
	}
	return t.indent + strings.Join(parts, "─┼─")
}

// Render prints the table
func (t *Table) Render() {
	if len(t.headers) > 0 {
		t.w.Println("%s", t.w.color(Bold, t.line(t.headers)))
		t.w.Println("%s", t.separator())
	}
	for _, row := range t.rows {
		t.w.Println("%s", t.line(row))
	}
	if t.total != nil {
		t.w.Println("%s", t.separator())
		t.w.Println("%s", t.w.color(Bold, t.line(t.total)))
	}
}
