package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"customer-pricing/core/types"
	"customer-pricing/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// mustJSON normalizes decimals so 80.0 and 80 compare equal
func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestDefaultMatchesReferenceQuote(t *testing.T) {
	cfg := Default()

	req := cfg.Quote.Request()
	require.Len(t, req.Materials, 2)
	require.Equal(t, "3200", types.MaterialTotal(req.Materials).String())
	require.Equal(t, "1600", req.Labor.Base().String())
	require.Equal(t, "0.0913", req.Rates.TaxRate.String())
	require.Equal(t, "0.6666", req.Rates.OverheadRate.String())
	require.Equal(t, "0.23", req.Rates.ProfitMargin.String())
	require.Equal(t, "0.2", req.Rates.CommissionRate.String())

	opts := cfg.Solver.Options()
	require.Equal(t, types.MethodIterative, opts.Method)
	require.Equal(t, "0.000001", opts.Tolerance.String())
	require.Equal(t, 1000, opts.MaxIterations)

	require.True(t, cfg.Output.WritePDF)
	require.Equal(t, DefaultPDFPath, cfg.Output.PDFPath)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "quote.json", `{
  "quote": {
    "title": "Service Entrance",
    "materials": [
      {"name": "3/4-in EMT Conduit", "quantity": 10, "unit_cost": "15.50"}
    ],
    "rates": {"tax": 0.07, "overhead": 0.5, "profit_margin": 0.2, "commission": 0.1}
  },
  "solver": {"method": "closed-form"}
}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "Service Entrance", cfg.Quote.Title)
	require.Len(t, cfg.Quote.Materials, 1)
	require.Equal(t, "155", cfg.Quote.Request().Materials[0].LineTotal().String())
	require.Equal(t, "0.07", cfg.Quote.Rates.Tax.String())
	require.Equal(t, types.MethodClosedForm, cfg.Solver.Options().Method)

	// untouched sections keep their defaults
	require.Equal(t, "20", cfg.Quote.Labor.Hours.String())
	require.Equal(t, 1000, cfg.Solver.MaxIterations)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "quote.yaml", `
quote:
  currency: EUR
  materials:
    - name: 4-SQ Box
      quantity: 25
      unit_cost: 3.20
  labor:
    hours: 8
    rate: 95
output:
  write_pdf: false
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, types.CurrencyEUR, cfg.Quote.Currency)
	require.Len(t, cfg.Quote.Materials, 1)
	require.Equal(t, "4-SQ Box", cfg.Quote.Materials[0].Name)
	require.Equal(t, "80", cfg.Quote.Request().Materials[0].LineTotal().String())
	require.Equal(t, "760", cfg.Quote.Request().Labor.Base().String())
	require.False(t, cfg.Output.WritePDF)
	require.Equal(t, "json", cfg.Output.Format)
}

func TestLoadHCL(t *testing.T) {
	path := writeFile(t, "quote.hcl", `
title = "Panel Upgrade"

material "4/0 THHN Copper Roll" {
  quantity  = 1
  unit_cost = 1200
}

material "2 in. Rigid Conduit 10 ft" {
  quantity  = 50
  unit_cost = 40
}

rates {
  tax           = 0.0913
  overhead      = 0.6666
  profit_margin = 0.25
  commission    = 0.2
}

solver {
  max_iterations = 200
}

output {
  pdf_path = "panel.pdf"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "Panel Upgrade", cfg.Quote.Title)
	require.Len(t, cfg.Quote.Materials, 2)
	require.Equal(t, "2 in. Rigid Conduit 10 ft", cfg.Quote.Materials[1].Name)
	require.Equal(t, "3200", types.MaterialTotal(cfg.Quote.Request().Materials).String())
	require.Equal(t, "0.25", cfg.Quote.Rates.ProfitMargin.String())
	require.Equal(t, "0.0913", cfg.Quote.Rates.Tax.String())
	require.Equal(t, 200, cfg.Solver.MaxIterations)
	require.Equal(t, "0.000001", cfg.Solver.Tolerance.String())
	require.Equal(t, "panel.pdf", cfg.Output.PDFPath)
	require.Equal(t, types.CurrencyUSD, cfg.Quote.Currency)
}

func TestLoadHCLWithoutMaterials(t *testing.T) {
	path := writeFile(t, "labor-only.hcl", `
labor {
  hours = 4
  rate  = 90
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, cfg.Quote.Materials)
	require.Empty(t, cfg.Quote.Request().Materials)
	require.Equal(t, "360", cfg.Quote.Request().Labor.Base().String())
}

func TestLoadInvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"broken json", "quote.json", `{"quote": `},
		{"broken yaml", "quote.yml", "quote: [\n"},
		{"broken hcl", "quote.hcl", `material "x" { quantity = }`},
		{"unknown extension", "quote.toml", `title = "x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.content))
			require.Nil(t, cfg)
			require.True(t, errors.IsType(err, errors.TypeConfig), "got %v", err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"config.json", "nested/config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Default().Save(path))

			cfg, err := Load(path)
			require.NoError(t, err)
			require.JSONEq(t, mustJSON(t, Default().Quote.Request()), mustJSON(t, cfg.Quote.Request()))
			require.JSONEq(t, mustJSON(t, Default().Solver.Options()), mustJSON(t, cfg.Solver.Options()))
			require.Equal(t, Default().Output, cfg.Output)
		})
	}
}

func TestSaveHCLNotSupported(t *testing.T) {
	err := Default().Save(filepath.Join(t.TempDir(), "config.hcl"))
	require.True(t, errors.IsType(err, errors.TypeNotSupported))
}
