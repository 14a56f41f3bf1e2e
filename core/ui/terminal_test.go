package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	table := w.NewTable("Qty", "Item", "Line").AlignRight(0, 2)
	table.AddRow("1", "Copper Roll", "$1,200.00")
	table.AddRow("50", "Conduit", "$2,000.00")
	table.SetTotal("", "Total", "$3,200.00")
	table.Render()
	require.NoError(t, w.Err())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"  Qty │ Item        │      Line",
		"  ────┼─────────────┼──────────",
		"    1 │ Copper Roll │ $1,200.00",
		"   50 │ Conduit     │ $2,000.00",
		"  ────┼─────────────┼──────────",
		"      │ Total       │ $3,200.00",
	}, lines)
}

func TestHeaderWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)
	w.Header("Breakdown")
	w.Success("saved %s", "quote.pdf")

	require.Equal(t, "\nBreakdown:\n✓ saved quote.pdf\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriterKeepsFirstError(t *testing.T) {
	w := NewWriter(failingWriter{}, true)
	w.Println("one")
	w.Println("two")
	require.EqualError(t, w.Err(), "closed pipe")
}
