package services

import (
	"math"

	"payoff-viz/interfaces"
)

// PayoffCalculator computes expiration profit/loss figures for a single
// vanilla option position. All methods are pure functions: same inputs always
// yield the same output.
type PayoffCalculator struct{}

// NewPayoffCalculator creates a new payoff calculator
func NewPayoffCalculator() *PayoffCalculator {
	return &PayoffCalculator{}
}

// IntrinsicValue returns the exercise value of the option at stockPrice,
// ignoring premium. Calls pay off above the strike, puts below it.
func (pc *PayoffCalculator) IntrinsicValue(stockPrice float64, pos interfaces.OptionPosition) float64 {
	if pos.Type == interfaces.Call {
		return math.Max(stockPrice-pos.Strike, 0)
	}
	return math.Max(pos.Strike-stockPrice, 0)
}

// Payoff returns the profit/loss at expiration if the underlying settles at
// stockPrice. The holder pays the premium upfront and realizes intrinsic
// value; the writer collects the premium upfront and owes intrinsic value.
func (pc *PayoffCalculator) Payoff(stockPrice float64, pos interfaces.OptionPosition) float64 {
	intrinsic := pc.IntrinsicValue(stockPrice, pos)
	if pos.Side == interfaces.Long {
		return intrinsic - pos.Premium
	}
	return pos.Premium - intrinsic
}

// BreakEven returns the terminal stock price at which the position's P/L is
// exactly zero. The result is independent of side: flipping the sign of the
// payoff does not move its zero crossing.
func (pc *PayoffCalculator) BreakEven(pos interfaces.OptionPosition) float64 {
	if pos.Type == interfaces.Call {
		return pos.Strike + pos.Premium
	}
	return pos.Strike - pos.Premium
}

// Summarize derives the closed-form summary for a position: break-even,
// maximum loss/profit, and the P/L if the underlying settled at currentPrice.
// A call's intrinsic value is unbounded above; a put's is capped at the
// strike since the underlying cannot trade below zero.
func (pc *PayoffCalculator) Summarize(currentPrice float64, pos interfaces.OptionPosition) interfaces.PositionSummary {
	summary := interfaces.PositionSummary{
		BreakEven:       pc.BreakEven(pos),
		PayoffAtCurrent: pc.Payoff(currentPrice, pos),
	}

	switch {
	case pos.Type == interfaces.Call && pos.Side == interfaces.Long:
		summary.MaxLoss = interfaces.MoneyValue{Amount: -pos.Premium}
		summary.MaxProfit = interfaces.MoneyValue{Unbounded: true}
	case pos.Type == interfaces.Put && pos.Side == interfaces.Long:
		summary.MaxLoss = interfaces.MoneyValue{Amount: -pos.Premium}
		summary.MaxProfit = interfaces.MoneyValue{Amount: math.Max(pos.Strike-pos.Premium, 0)}
	case pos.Type == interfaces.Call && pos.Side == interfaces.Short:
		summary.MaxLoss = interfaces.MoneyValue{Unbounded: true}
		summary.MaxProfit = interfaces.MoneyValue{Amount: pos.Premium}
	default: // short put
		summary.MaxLoss = interfaces.MoneyValue{Amount: math.Max(pos.Strike-pos.Premium, 0)}
		summary.MaxProfit = interfaces.MoneyValue{Amount: pos.Premium}
	}

	return summary
}
