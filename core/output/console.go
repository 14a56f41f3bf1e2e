package output

import (
	"io"

	"customer-pricing/core/quote"
	"customer-pricing/core/ui"
)

// ConsoleFormatter renders a plain-text quote for the terminal
type ConsoleFormatter struct {
	noColor bool
}

// NewConsoleFormatter creates a console formatter
func NewConsoleFormatter(noColor bool) *ConsoleFormatter {
	return &ConsoleFormatter{noColor: noColor}
}

// Format returns FormatCLI
func (f *ConsoleFormatter) Format() Format {
	return FormatCLI
}

// Render writes the materials and breakdown tables
func (f *ConsoleFormatter) Render(w io.Writer, q *quote.Quote) error {
	out := ui.NewWriter(w, f.noColor)

	out.Println("%s", q.Title)
	out.Println("Quote %s, %s", q.ID, q.CreatedAt.Format("2006-01-02"))

	out.Header("Materials")
	materials := out.NewTable("Qty", "Item", "Unit Cost", "Line Total").AlignRight(0, 2, 3)
	for _, line := range q.Lines {
		materials.AddRow(
			FormatQuantity(line.Quantity),
			line.Name,
			FormatMoney(line.UnitCost, q.Currency),
			FormatMoney(line.Total, q.Currency),
		)
	}
	materials.SetTotal("", "Material Total", "", FormatMoney(q.MaterialTotal, q.Currency))
	materials.Render()

	out.Header("Breakdown")
	breakdown := out.NewTable().AlignRight(1)
	for _, entry := range q.Breakdown().Entries {
		breakdown.AddRow(entry.Key.String(), FormatMoney(entry.Amount, q.Currency))
	}
	breakdown.Render()

	out.Println("")
	if q.Resolution.Iterations > 0 {
		out.Println("Resolved by %s method in %d iterations", q.Resolution.Method, q.Resolution.Iterations)
	} else {
		out.Println("Resolved by %s method", q.Resolution.Method)
	}

	return out.Err()
}
