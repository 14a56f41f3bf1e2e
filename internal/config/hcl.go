package config

import (
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"customer-pricing/core/types"
)

// hclFile is the HCL quote file layout:
//
//	title    = "Panel upgrade"
//	currency = "USD"
//
//	material "4/0 THHN Copper Roll" {
//	  quantity  = 1
//	  unit_cost = 1200
//	}
//
//	labor {
//	  hours = 20
//	  rate  = 80
//	}
//
//	rates {
//	  tax           = 0.0913
//	  overhead      = 0.6666
//	  profit_margin = 0.23
//	  commission    = 0.20
//	}
type hclFile struct {
	Title     *string       `hcl:"title,optional"`
	Currency  *string       `hcl:"currency,optional"`
	Materials []hclMaterial `hcl:"material,block"`
	Labor     *hclLabor     `hcl:"labor,block"`
	Rates     *hclRates     `hcl:"rates,block"`
	Solver    *hclSolver    `hcl:"solver,block"`
	Output    *hclOutput    `hcl:"output,block"`
}

type hclMaterial struct {
	Name     string  `hcl:"name,label"`
	Quantity float64 `hcl:"quantity"`
	UnitCost float64 `hcl:"unit_cost"`
}

type hclLabor struct {
	Hours float64 `hcl:"hours"`
	Rate  float64 `hcl:"rate"`
}

type hclRates struct {
	Tax          float64 `hcl:"tax"`
	Overhead     float64 `hcl:"overhead"`
	ProfitMargin float64 `hcl:"profit_margin"`
	Commission   float64 `hcl:"commission"`
}

type hclSolver struct {
	Method        *string  `hcl:"method,optional"`
	Tolerance     *float64 `hcl:"tolerance,optional"`
	MaxIterations *int     `hcl:"max_iterations,optional"`
}

type hclOutput struct {
	Format   *string `hcl:"format,optional"`
	WritePDF *bool   `hcl:"write_pdf,optional"`
	PDFPath  *string `hcl:"pdf_path,optional"`
	NoColor  *bool   `hcl:"no_color,optional"`
}

// decodeHCL overlays an HCL quote file onto config
func decodeHCL(path string, data []byte, config *Config) error {
	var file hclFile
	if err := hclsimple.Decode(path, data, nil, &file); err != nil {
		return err
	}

	q := &config.Quote
	if file.Title != nil {
		q.Title = *file.Title
	}
	if file.Currency != nil {
		q.Currency = types.Currency(*file.Currency)
	}
	// material blocks are the whole list; a file without any quotes no materials
	q.Materials = make([]MaterialConfig, len(file.Materials))
	for i, m := range file.Materials {
		q.Materials[i] = MaterialConfig{
			Name:     m.Name,
			Quantity: decimal.NewFromFloat(m.Quantity),
			UnitCost: decimal.NewFromFloat(m.UnitCost),
		}
	}
	if l := file.Labor; l != nil {
		q.Labor = LaborConfig{
			Hours: decimal.NewFromFloat(l.Hours),
			Rate:  decimal.NewFromFloat(l.Rate),
		}
	}
	if r := file.Rates; r != nil {
		q.Rates = RatesConfig{
			Tax:          decimal.NewFromFloat(r.Tax),
			Overhead:     decimal.NewFromFloat(r.Overhead),
			ProfitMargin: decimal.NewFromFloat(r.ProfitMargin),
			Commission:   decimal.NewFromFloat(r.Commission),
		}
	}

	if s := file.Solver; s != nil {
		if s.Method != nil {
			config.Solver.Method = *s.Method
		}
		if s.Tolerance != nil {
			config.Solver.Tolerance = decimal.NewFromFloat(*s.Tolerance)
		}
		if s.MaxIterations != nil {
			config.Solver.MaxIterations = *s.MaxIterations
		}
	}

	if o := file.Output; o != nil {
		if o.Format != nil {
			config.Output.Format = *o.Format
		}
		if o.WritePDF != nil {
			config.Output.WritePDF = *o.WritePDF
		}
		if o.PDFPath != nil {
			config.Output.PDFPath = *o.PDFPath
		}
		if o.NoColor != nil {
			config.Output.NoColor = *o.NoColor
		}
	}
	return nil
}
