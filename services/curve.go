package services

import (
	"math"

	"payoff-viz/interfaces"
)

const (
	// curveSamples is the number of evenly spaced prices in the grid,
	// inclusive of both endpoints
	curveSamples = 100
	// rangeFraction widens the grid to ±30% around the current price
	rangeFraction = 0.3
	// minSamplePrice floors the grid to avoid non-positive prices
	minSamplePrice = 0.1
)

// CurveBuilder samples the payoff calculator across a price range around the
// current underlying price to produce a payoff curve.
type CurveBuilder struct {
	calc *PayoffCalculator
}

// NewCurveBuilder creates a new curve builder
func NewCurveBuilder(calc *PayoffCalculator) *CurveBuilder {
	return &CurveBuilder{calc: calc}
}

// PriceGrid returns curveSamples evenly spaced stock prices spanning
// [max(0.1, 0.7*currentPrice), 1.3*currentPrice], inclusive of both
// endpoints.
func (cb *CurveBuilder) PriceGrid(currentPrice float64) []float64 {
	lower := math.Max(minSamplePrice, currentPrice-rangeFraction*currentPrice)
	upper := currentPrice + rangeFraction*currentPrice

	grid := make([]float64, curveSamples)
	step := (upper - lower) / float64(curveSamples-1)
	for i := range grid {
		grid[i] = lower + float64(i)*step
	}
	// pin the last sample so accumulated float error cannot shift the endpoint
	grid[curveSamples-1] = upper
	return grid
}

// Build evaluates the payoff at every grid price and returns the curve.
func (cb *CurveBuilder) Build(currentPrice float64, pos interfaces.OptionPosition) interfaces.PayoffCurve {
	grid := cb.PriceGrid(currentPrice)

	curve := make(interfaces.PayoffCurve, 0, len(grid))
	for _, price := range grid {
		curve = append(curve, interfaces.PayoffPoint{
			Price:      price,
			ProfitLoss: cb.calc.Payoff(price, pos),
		})
	}
	return curve
}
