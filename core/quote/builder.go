// Package quote assembles a customer quote from materials, labor and rates.
package quote

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"customer-pricing/core/pricing"
	"customer-pricing/core/types"
	"customer-pricing/internal/errors"
	"customer-pricing/internal/logging"
)

// DefaultTitle heads every rendered quote unless overridden
const DefaultTitle = "Customer Pricing Breakdown"

// Request is the input for building a quote
type Request struct {
	// Title is the document title
	Title string

	// Currency is the quote currency
	Currency types.Currency

	// Materials are the material line items, in display order
	Materials []types.LineItem

	// Labor is the billable labor
	Labor types.Labor

	// Rates are the pricing fractions
	Rates types.RateParameters
}

// Line is a material line item with its computed total
type Line struct {
	types.LineItem
	Total decimal.Decimal `json:"line_total"`
}

// Quote is a fully priced customer quote
type Quote struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Currency      types.Currency       `json:"currency"`
	CreatedAt     time.Time            `json:"created_at"`
	Lines         []Line               `json:"materials"`
	MaterialTotal decimal.Decimal      `json:"material_total"`
	Labor         types.Labor          `json:"labor"`
	LaborBase     decimal.Decimal      `json:"labor_base"`
	Rates         types.RateParameters `json:"rates"`
	Resolution    *types.Resolution    `json:"resolution"`
}

// FinalPrice returns the rounded final price
func (q *Quote) FinalPrice() decimal.Decimal {
	return q.Resolution.FinalPrice
}

// Breakdown returns the price breakdown
func (q *Quote) Breakdown() types.PriceBreakdown {
	return q.Resolution.Breakdown
}

// PriceResolver resolves a final price from pricing inputs
type PriceResolver interface {
	Resolve(in pricing.Inputs) (*types.Resolution, error)
}

// Builder builds quotes
type Builder struct {
	resolver PriceResolver
	now      func() time.Time
	newID    func() string
}

// Option configures a Builder
type Option func(*Builder)

// WithClock overrides the quote timestamp source
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// WithIDGenerator overrides quote ID generation
func WithIDGenerator(newID func() string) Option {
	return func(b *Builder) {
		b.newID = newID
	}
}

// NewBuilder creates a quote builder backed by resolver
func NewBuilder(resolver PriceResolver, opts ...Option) *Builder {
	b := &Builder{
		resolver: resolver,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build prices a quote. An empty materials list fails before the resolver runs.
func (b *Builder) Build(ctx context.Context, req Request) (*Quote, error) {
	if len(req.Materials) == 0 {
		return nil, errors.Input("materials list is empty: add items, then rerun")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := make([]Line, len(req.Materials))
	for i, item := range req.Materials {
		lines[i] = Line{LineItem: item, Total: item.LineTotal()}
	}
	materialTotal := types.MaterialTotal(req.Materials)
	laborBase := req.Labor.Base()

	logging.Debug("resolving price",
		zap.Int("materials", len(lines)),
		zap.String("material_total", materialTotal.String()),
		zap.String("labor_base", laborBase.String()))

	resolution, err := b.resolver.Resolve(pricing.Inputs{
		MaterialCost: materialTotal,
		LaborCost:    laborBase,
		Rates:        req.Rates,
	})
	if err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = DefaultTitle
	}
	currency := req.Currency
	if currency == "" {
		currency = types.CurrencyUSD
	}

	return &Quote{
		ID:            b.newID(),
		Title:         title,
		Currency:      currency,
		CreatedAt:     b.now().UTC(),
		Lines:         lines,
		MaterialTotal: materialTotal,
		Labor:         req.Labor,
		LaborBase:     laborBase,
		Rates:         req.Rates,
		Resolution:    resolution,
	}, nil
}
