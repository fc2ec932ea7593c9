package services

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"payoff-viz/interfaces"
)

// SessionInput holds everything the interactive prompts collect
type SessionInput struct {
	Position     interfaces.OptionPosition
	CurrentPrice float64
}

// PromptService runs the interactive question/answer session that collects an
// option position from the user.
type PromptService struct {
	in     *bufio.Reader
	out    io.Writer
	logger *logrus.Logger
}

// NewPromptService creates a new prompt service reading from in and writing
// to out.
func NewPromptService(in io.Reader, out io.Writer) *PromptService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return &PromptService{
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Collect prompts for the five inputs in fixed order: option type, position
// side, current price, strike price, premium. The two enum prompts re-prompt
// until a valid value is entered; the three numeric prompts abort the run on
// non-numeric input. That asymmetry is deliberate user-facing behavior.
func (ps *PromptService) Collect() (*SessionInput, error) {
	optionType, err := ps.promptOptionType()
	if err != nil {
		return nil, err
	}

	side, err := ps.promptPositionSide()
	if err != nil {
		return nil, err
	}

	currentPrice, err := ps.promptFloat("Enter the current stock price: ")
	if err != nil {
		return nil, err
	}

	strike, err := ps.promptFloat("Enter the strike price: ")
	if err != nil {
		return nil, err
	}

	premiumLabel := "paid"
	if side == interfaces.Short {
		premiumLabel = "received"
	}
	premium, err := ps.promptFloat(fmt.Sprintf("Enter the premium %s per share: ", premiumLabel))
	if err != nil {
		return nil, err
	}

	ps.logger.WithFields(logrus.Fields{
		"type":    optionType,
		"side":    side,
		"current": currentPrice,
		"strike":  strike,
		"premium": premium,
	}).Debug("Collected position inputs")

	return &SessionInput{
		Position: interfaces.OptionPosition{
			Type:    optionType,
			Side:    side,
			Strike:  strike,
			Premium: premium,
		},
		CurrentPrice: currentPrice,
	}, nil
}

// PrintSummary writes the position summary: echoed inputs, break-even,
// maximum loss/profit and the P/L if exercised at the current price. Dollar
// amounts are formatted to two decimals; unbounded values print "Unlimited".
func (ps *PromptService) PrintSummary(in *SessionInput, summary interfaces.PositionSummary) {
	premiumLabel := "Premium Paid"
	if in.Position.Side == interfaces.Short {
		premiumLabel = "Premium Received"
	}

	fmt.Fprintln(ps.out)
	fmt.Fprintln(ps.out, "--- Position Summary ---")
	fmt.Fprintf(ps.out, "%-22s %s\n", "Option Type:", in.Position.Type)
	fmt.Fprintf(ps.out, "%-22s %s\n", "Position:", in.Position.Side)
	fmt.Fprintf(ps.out, "%-22s $%.2f\n", "Current Price:", in.CurrentPrice)
	fmt.Fprintf(ps.out, "%-22s $%.2f\n", "Strike Price:", in.Position.Strike)
	fmt.Fprintf(ps.out, "%-22s $%.2f\n", premiumLabel+":", in.Position.Premium)
	fmt.Fprintf(ps.out, "%-22s $%.2f\n", "Break-Even Price:", summary.BreakEven)
	fmt.Fprintf(ps.out, "%-22s %s\n", "Maximum Loss:", summary.MaxLoss)
	fmt.Fprintf(ps.out, "%-22s %s\n", "Maximum Profit:", summary.MaxProfit)
	fmt.Fprintf(ps.out, "%-22s $%.2f\n", "P/L if Exercised Now:", summary.PayoffAtCurrent)
	fmt.Fprintln(ps.out)
}

// promptOptionType re-prompts until a valid option type is entered.
func (ps *PromptService) promptOptionType() (interfaces.OptionType, error) {
	for {
		raw, err := ps.readLine("Option type (call/put): ")
		if err != nil {
			return "", err
		}
		optionType, parseErr := interfaces.ParseOptionType(raw)
		if parseErr != nil {
			fmt.Fprintln(ps.out, "Please enter 'call' or 'put'.")
			continue
		}
		return optionType, nil
	}
}

// promptPositionSide re-prompts until a valid position side is entered.
func (ps *PromptService) promptPositionSide() (interfaces.PositionSide, error) {
	for {
		raw, err := ps.readLine("Position (long/short): ")
		if err != nil {
			return "", err
		}
		side, parseErr := interfaces.ParsePositionSide(raw)
		if parseErr != nil {
			fmt.Fprintln(ps.out, "Please enter 'long' or 'short'.")
			continue
		}
		return side, nil
	}
}

// promptFloat reads one numeric value. Unlike the enum prompts there is no
// retry loop: a parse failure aborts the whole run.
func (ps *PromptService) promptFloat(prompt string) (float64, error) {
	raw, err := ps.readLine(prompt)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric input %q: %w", strings.TrimSpace(raw), err)
	}
	return value, nil
}

func (ps *PromptService) readLine(prompt string) (string, error) {
	fmt.Fprint(ps.out, prompt)
	line, err := ps.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
