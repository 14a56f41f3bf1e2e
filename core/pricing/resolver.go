package pricing

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"customer-pricing/core/types"
	"customer-pricing/internal/errors"
	"customer-pricing/internal/logging"
)

const (
	// DefaultMaxIterations bounds the fixed-point iteration
	DefaultMaxIterations = 1000
)

// DefaultTolerance is the largest accepted change between successive iterates
var DefaultTolerance = decimal.New(1, -6)

// Options control how a price is resolved
type Options struct {
	// Method selects iteration or the closed-form solve
	Method types.Method

	// Tolerance is the convergence threshold on |new_price - price|
	Tolerance decimal.Decimal

	// MaxIterations is the iteration budget; 0 always fails to converge
	MaxIterations int
}

// DefaultOptions returns the iterative method with tolerance 1e-6 and 1000 iterations
func DefaultOptions() Options {
	return Options{
		Method:        types.MethodIterative,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Resolver finds the self-consistent final price for a set of inputs
type Resolver struct {
	opts   Options
	logger *zap.Logger
}

// NewResolver creates a resolver. An empty method means iterative.
func NewResolver(opts Options) *Resolver {
	if opts.Method == "" {
		opts.Method = types.MethodIterative
	}
	return &Resolver{
		opts:   opts,
		logger: logging.Named("pricing"),
	}
}

// Options returns the resolver options
func (r *Resolver) Options() Options {
	return r.opts
}

// Resolve computes the final price and its breakdown.
// No partial result is returned on error.
func (r *Resolver) Resolve(in Inputs) (*types.Resolution, error) {
	if err := r.opts.Validate(); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var (
		price      decimal.Decimal
		iterations int
		err        error
	)
	switch r.opts.Method {
	case types.MethodClosedForm:
		price, err = r.solveClosedForm(in)
	default:
		price, iterations, err = r.iterate(in)
	}
	if err != nil {
		return nil, err
	}

	r.logger.Debug("price resolved",
		zap.Stringer("method", r.opts.Method),
		zap.Int("iterations", iterations),
		zap.String("final_price", price.String()))

	return &types.Resolution{
		FinalPrice: price.Round(2),
		Breakdown:  in.breakdown(price),
		Method:     r.opts.Method,
		Iterations: iterations,
	}, nil
}

// iterate runs the fixed-point iteration until successive prices agree within tolerance
func (r *Resolver) iterate(in Inputs) (decimal.Decimal, int, error) {
	taxed := in.TaxedMaterial()
	price := taxed.Add(in.LaborCost)
	delta := decimal.Zero

	for i := 1; i <= r.opts.MaxIterations; i++ {
		next := in.components(taxed, price).newPrice
		delta = next.Sub(price).Abs()

		r.logger.Debug("price iteration",
			zap.Int("iteration", i),
			zap.String("price", next.String()),
			zap.String("delta", delta.String()))

		if delta.LessThan(r.opts.Tolerance) {
			return next, i, nil
		}
		price = next
	}

	return decimal.Zero, r.opts.MaxIterations, errors.Convergence("price did not converge").
		WithContext("iterations", r.opts.MaxIterations).
		WithContext("tolerance", r.opts.Tolerance.String()).
		WithContext("last_delta", delta.String())
}

// solveClosedForm solves p = ((T + L + m*c*p) * (1 + o)) / (1 - m) for p
func (r *Resolver) solveClosedForm(in Inputs) (decimal.Decimal, error) {
	rates := in.Rates
	markup := one.Add(rates.OverheadRate)
	denominator := one.Sub(rates.ProfitMargin).
		Sub(rates.ProfitMargin.Mul(rates.CommissionRate).Mul(markup))
	if !denominator.IsPositive() {
		return decimal.Zero, errors.Convergence("price equation has no finite positive solution").
			WithContext("denominator", denominator.String())
	}
	return in.InitialGuess().Mul(markup).Div(denominator), nil
}
