// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"customer-pricing/core/pricing"
	"customer-pricing/core/quote"
	"customer-pricing/core/types"
	"customer-pricing/internal/errors"
	"customer-pricing/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Quote contains the materials, labor and rates to price
	Quote QuoteConfig `json:"quote" yaml:"quote"`

	// Solver contains price resolution settings
	Solver SolverConfig `json:"solver" yaml:"solver"`

	// Output contains output configuration
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`
}

// QuoteConfig describes what is being quoted
type QuoteConfig struct {
	// Title heads the report
	Title string `json:"title" yaml:"title"`

	// Currency is the quote currency code
	Currency types.Currency `json:"currency" yaml:"currency"`

	// Materials are the material line items
	Materials []MaterialConfig `json:"materials" yaml:"materials"`

	// Labor is the billable labor
	Labor LaborConfig `json:"labor" yaml:"labor"`

	// Rates are the pricing fractions
	Rates RatesConfig `json:"rates" yaml:"rates"`
}

// MaterialConfig is one material line
type MaterialConfig struct {
	Name     string          `json:"name" yaml:"name"`
	Quantity decimal.Decimal `json:"quantity" yaml:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost" yaml:"unit_cost"`
}

// LaborConfig contains labor hours and the hourly rate
type LaborConfig struct {
	Hours decimal.Decimal `json:"hours" yaml:"hours"`
	Rate  decimal.Decimal `json:"rate" yaml:"rate"`
}

// RatesConfig contains the pricing fractions
type RatesConfig struct {
	Tax          decimal.Decimal `json:"tax" yaml:"tax"`
	Overhead     decimal.Decimal `json:"overhead" yaml:"overhead"`
	ProfitMargin decimal.Decimal `json:"profit_margin" yaml:"profit_margin"`
	Commission   decimal.Decimal `json:"commission" yaml:"commission"`
}

// SolverConfig contains price resolution settings
type SolverConfig struct {
	// Method is "iterative" or "closed-form"
	Method string `json:"method" yaml:"method"`

	// Tolerance is the convergence threshold
	Tolerance decimal.Decimal `json:"tolerance" yaml:"tolerance"`

	// MaxIterations bounds the iteration
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the console output format (cli, json)
	Format string `json:"format" yaml:"format"`

	// WritePDF enables the PDF report
	WritePDF bool `json:"write_pdf" yaml:"write_pdf"`

	// PDFPath is where the PDF report is written
	PDFPath string `json:"pdf_path" yaml:"pdf_path"`

	// NoColor disables ANSI colors in console output
	NoColor bool `json:"no_color" yaml:"no_color"`
}

// DefaultPDFPath is the report filename used when none is configured
const DefaultPDFPath = "customer_pricing.pdf"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Quote: QuoteConfig{
			Title:    quote.DefaultTitle,
			Currency: types.CurrencyUSD,
			Materials: []MaterialConfig{
				{Name: "4/0 THHN Copper Roll", Quantity: dec("1"), UnitCost: dec("1200")},
				{Name: "2 in. Rigid Conduit 10 ft", Quantity: dec("50"), UnitCost: dec("40")},
			},
			Labor: LaborConfig{
				Hours: dec("20"),
				Rate:  dec("80.0"),
			},
			Rates: RatesConfig{
				Tax:          dec("0.0913"),
				Overhead:     dec("0.6666"), // 66.66 %
				ProfitMargin: dec("0.23"),
				Commission:   dec("0.20"),
			},
		},
		Solver: SolverConfig{
			Method:        string(types.MethodIterative),
			Tolerance:     pricing.DefaultTolerance,
			MaxIterations: pricing.DefaultMaxIterations,
		},
		Output: OutputConfig{
			Format:   "cli",
			WritePDF: true,
			PDFPath:  DefaultPDFPath,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file. The decoder is chosen by extension
// (.json, .yaml, .yml, .hcl); a missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("read config", err)
	}

	config := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	case ".hcl":
		err = decodeHCL(path, data, config)
	default:
		return nil, errors.Config("unsupported config format "+ext, nil)
	}
	if err != nil {
		return nil, errors.Config("decode "+filepath.Base(path), err)
	}

	return config, nil
}

// Save saves configuration to a file as JSON or YAML
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		return errors.NotSupported("saving config as " + ext)
	}
	if err != nil {
		return errors.Config("encode config", err)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Request converts the quote section into a quote request
func (q QuoteConfig) Request() quote.Request {
	materials := make([]types.LineItem, len(q.Materials))
	for i, m := range q.Materials {
		materials[i] = types.LineItem{Name: m.Name, Quantity: m.Quantity, UnitCost: m.UnitCost}
	}
	return quote.Request{
		Title:     q.Title,
		Currency:  q.Currency,
		Materials: materials,
		Labor:     types.Labor{Hours: q.Labor.Hours, Rate: q.Labor.Rate},
		Rates: types.RateParameters{
			TaxRate:        q.Rates.Tax,
			OverheadRate:   q.Rates.Overhead,
			ProfitMargin:   q.Rates.ProfitMargin,
			CommissionRate: q.Rates.Commission,
		},
	}
}

// Options converts the solver section into resolver options
func (s SolverConfig) Options() pricing.Options {
	return pricing.Options{
		Method:        types.Method(s.Method),
		Tolerance:     s.Tolerance,
		MaxIterations: s.MaxIterations,
	}
}
