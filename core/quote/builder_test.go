package quote

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"customer-pricing/core/pricing"
	"customer-pricing/core/types"
	"customer-pricing/internal/errors"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func scenarioRequest() Request {
	return Request{
		Materials: []types.LineItem{
			{Name: "4/0 THHN Copper Roll", Quantity: d("1"), UnitCost: d("1200")},
			{Name: "2 in. Rigid Conduit 10 ft", Quantity: d("50"), UnitCost: d("40")},
		},
		Labor: types.Labor{Hours: d("20"), Rate: d("80")},
		Rates: types.RateParameters{
			TaxRate:        d("0.0913"),
			OverheadRate:   d("0.6666"),
			ProfitMargin:   d("0.23"),
			CommissionRate: d("0.20"),
		},
	}
}

// countingResolver records calls and delegates to a real resolver
type countingResolver struct {
	calls int
	last  pricing.Inputs
	inner *pricing.Resolver
}

func (r *countingResolver) Resolve(in pricing.Inputs) (*types.Resolution, error) {
	r.calls++
	r.last = in
	return r.inner.Resolve(in)
}

func TestBuildReferenceQuote(t *testing.T) {
	created := time.Date(2026, 10, 18, 9, 30, 0, 0, time.FixedZone("EST", -5*3600))
	resolver := &countingResolver{inner: pricing.NewResolver(pricing.DefaultOptions())}
	builder := NewBuilder(resolver,
		WithClock(func() time.Time { return created }),
		WithIDGenerator(func() string { return "quote-1" }))

	q, err := builder.Build(context.Background(), scenarioRequest())
	require.NoError(t, err)

	require.Equal(t, 1, resolver.calls)
	require.True(t, resolver.last.MaterialCost.Equal(d("3200")))
	require.True(t, resolver.last.LaborCost.Equal(d("1600")))

	require.Equal(t, "quote-1", q.ID)
	require.Equal(t, DefaultTitle, q.Title)
	require.Equal(t, types.CurrencyUSD, q.Currency)
	require.Equal(t, created.UTC(), q.CreatedAt)
	require.Len(t, q.Lines, 2)
	require.True(t, q.Lines[0].Total.Equal(d("1200")))
	require.True(t, q.Lines[1].Total.Equal(d("2000")))
	require.True(t, q.MaterialTotal.Equal(d("3200")))
	require.True(t, q.LaborBase.Equal(d("1600")))
	require.Equal(t, "12240.23", q.FinalPrice().StringFixed(2))
	breakdown := q.Breakdown()
	require.Equal(t, "563.05", breakdown.Amount(types.KeyCommission).StringFixed(2))
}

func TestBuildEmptyMaterialsAbortsBeforeResolve(t *testing.T) {
	resolver := &countingResolver{inner: pricing.NewResolver(pricing.DefaultOptions())}
	req := scenarioRequest()
	req.Materials = nil

	q, err := NewBuilder(resolver).Build(context.Background(), req)
	require.Nil(t, q)
	require.True(t, errors.IsType(err, errors.TypeInput))
	require.Contains(t, err.Error(), "materials list is empty")
	require.Zero(t, resolver.calls)
}

func TestBuildPropagatesConvergenceError(t *testing.T) {
	opts := pricing.DefaultOptions()
	opts.MaxIterations = 0

	q, err := NewBuilder(pricing.NewResolver(opts)).Build(context.Background(), scenarioRequest())
	require.Nil(t, q)
	require.True(t, errors.IsType(err, errors.TypeConvergence))
}

func TestBuildKeepsTitleAndCurrency(t *testing.T) {
	req := scenarioRequest()
	req.Title = "Panel Upgrade"
	req.Currency = types.CurrencyEUR

	q, err := NewBuilder(pricing.NewResolver(pricing.DefaultOptions())).Build(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "Panel Upgrade", q.Title)
	require.Equal(t, types.CurrencyEUR, q.Currency)
	require.NotEmpty(t, q.ID)
}

func TestBuildCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBuilder(pricing.NewResolver(pricing.DefaultOptions())).Build(ctx, scenarioRequest())
	require.ErrorIs(t, err, context.Canceled)
}
