// Package cmd - quote command
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"customer-pricing/core/output"
	"customer-pricing/core/pricing"
	"customer-pricing/core/quote"
	"customer-pricing/core/ui"
	"customer-pricing/internal/config"
	"customer-pricing/internal/errors"
	"customer-pricing/internal/logging"
)

var (
	outputFormat string
	pdfPath      string
	noPDF        bool
	method       string
	noColor      bool
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Compute a price quote and write the PDF report",
	Long: `Compute the self-consistent final price for the configured materials,
labor and rates, print the breakdown, and write a paginated PDF report.

Examples:
  customer-pricing quote
  customer-pricing quote --config job.hcl
  customer-pricing quote --method closed-form --pdf out/job.pdf
  customer-pricing quote --format json --no-pdf`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "console output format (cli, json)")
	quoteCmd.Flags().StringVar(&pdfPath, "pdf", "", "PDF report path (default "+config.DefaultPDFPath+")")
	quoteCmd.Flags().BoolVar(&noPDF, "no-pdf", false, "skip the PDF report")
	quoteCmd.Flags().StringVarP(&method, "method", "m", "", "price resolution method (iterative, closed-form)")
	quoteCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// applyFlags overlays command-line flags onto the loaded configuration
func applyFlags(cfg *config.Config) {
	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}
	if pdfPath != "" {
		cfg.Output.PDFPath = pdfPath
	}
	if noPDF {
		cfg.Output.WritePDF = false
	}
	if method != "" {
		cfg.Solver.Method = method
	}
	if noColor {
		cfg.Output.NoColor = true
	}
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyFlags(cfg)

	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
			ui.NewWriter(cmd.ErrOrStderr(), cfg.Output.NoColor).
				Warning("config file %s not found, quoting the built-in defaults", cfgFile)
		}
	}

	registry := output.NewRegistry(
		output.NewConsoleFormatter(cfg.Output.NoColor),
		output.NewJSONFormatter(),
		output.NewPDFFormatter(),
	)
	console, ok := registry.GetFormatter(output.Format(cfg.Output.Format))
	if !ok || console.Format() == output.FormatPDF {
		return errors.Inputf("unknown output format %q (want cli or json)", cfg.Output.Format)
	}

	logging.Info("Starting price quote",
		zap.Int("materials", len(cfg.Quote.Materials)),
		zap.String("method", cfg.Solver.Method))

	builder := quote.NewBuilder(pricing.NewResolver(cfg.Solver.Options()))
	q, err := builder.Build(cmd.Context(), cfg.Quote.Request())
	if err != nil {
		return err
	}

	logging.Info("Price resolved",
		zap.String("quote_id", q.ID),
		zap.String("final_price", q.FinalPrice().StringFixed(2)),
		zap.Int("iterations", q.Resolution.Iterations))

	stdout := cmd.OutOrStdout()
	if err := console.Render(stdout, q); err != nil {
		return errors.Render("print quote", err)
	}

	if !cfg.Output.WritePDF {
		return nil
	}

	pdf, _ := registry.GetFormatter(output.FormatPDF)
	path, size, err := writeReport(cfg.Output.PDFPath, pdf, q)
	if err != nil {
		return err
	}
	logging.Info("Report written", zap.String("path", path), zap.String("size", humanize.Bytes(uint64(size))))

	// Keep machine-readable stdout clean
	notice := stdout
	if console.Format() == output.FormatJSON {
		notice = cmd.ErrOrStderr()
	}
	ui.NewWriter(notice, cfg.Output.NoColor).Success("PDF saved to: %s", path)
	return nil
}

// writeReport renders q fully in memory, then creates, writes and closes the file.
// It returns the absolute path and the number of bytes written.
func writeReport(path string, f output.Formatter, q *quote.Quote) (written string, size int, err error) {
	var buf bytes.Buffer
	if err := f.Render(&buf, q); err != nil {
		return "", 0, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", 0, errors.Render("resolve report path", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", 0, errors.Render("create report directory", err)
	}

	file, err := os.Create(abs)
	if err != nil {
		return "", 0, errors.Render("create report", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Render("close report", cerr)
		}
	}()

	n, err := io.Copy(file, &buf)
	if err != nil {
		return "", 0, errors.Render(fmt.Sprintf("write report %s", abs), err)
	}
	return abs, int(n), nil
}
