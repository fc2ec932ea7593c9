package interfaces

import (
	"fmt"
	"io"
	"strings"
)

// OptionType identifies the kind of vanilla option contract
type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// PositionSide identifies which side of the contract the trader holds
type PositionSide string

const (
	Long  PositionSide = "long"
	Short PositionSide = "short"
)

// ParseOptionType matches s against the two valid option types. Input is
// normalized to lowercase, so "CALL" and "Call" are accepted.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	}
	return "", fmt.Errorf("invalid option type %q: must be 'call' or 'put'", s)
}

// ParsePositionSide matches s against the two valid position sides,
// case-insensitively.
func ParsePositionSide(s string) (PositionSide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long":
		return Long, nil
	case "short":
		return Short, nil
	}
	return "", fmt.Errorf("invalid position side %q: must be 'long' or 'short'", s)
}

// OptionPosition represents a single vanilla option position. It is a value
// struct built once per calculation; strike and premium are taken as entered
// and not validated for financial sanity.
type OptionPosition struct {
	Type    OptionType
	Side    PositionSide
	Strike  float64 // Strike price per share
	Premium float64 // Premium per share, paid (long) or received (short)
}

// PayoffPoint is one sampled (stock price, profit/loss) pair
type PayoffPoint struct {
	Price      float64
	ProfitLoss float64
}

// PayoffCurve is the ordered sequence of payoff samples across a price range,
// generated fresh per render and never cached
type PayoffCurve []PayoffPoint

// MoneyValue is a dollar amount that may be unbounded, such as the maximum
// profit of a long call
type MoneyValue struct {
	Amount    float64
	Unbounded bool
}

// String formats the amount with a leading "$" to two decimal places, or the
// literal "Unlimited" when the value is unbounded.
func (v MoneyValue) String() string {
	if v.Unbounded {
		return "Unlimited"
	}
	return fmt.Sprintf("$%.2f", v.Amount)
}

// PositionSummary holds the closed-form summary values for one position
type PositionSummary struct {
	BreakEven       float64
	MaxLoss         MoneyValue
	MaxProfit       MoneyValue
	PayoffAtCurrent float64
}

// DiagramRenderer defines the interface for the chart backend. The core
// computation hands a finished payoff curve to an implementation, which
// writes a displayable page to w.
type DiagramRenderer interface {
	Render(w io.Writer, currentPrice float64, pos OptionPosition) error
}
