package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/sirupsen/logrus"

	"payoff-viz/interfaces"
)

// ChartService renders payoff diagrams with go-echarts. It implements
// interfaces.DiagramRenderer.
type ChartService struct {
	calc   *PayoffCalculator
	curves *CurveBuilder
	logger *logrus.Logger
}

// NewChartService creates a new chart service
func NewChartService(calc *PayoffCalculator, curves *CurveBuilder) *ChartService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return &ChartService{
		calc:   calc,
		curves: curves,
		logger: logger,
	}
}

// Title builds the diagram title for a position, e.g.
// "Long Call Option Payoff Diagram".
func (cs *ChartService) Title(pos interfaces.OptionPosition) string {
	return fmt.Sprintf("%s %s Option Payoff Diagram",
		capitalize(string(pos.Side)), capitalize(string(pos.Type)))
}

// Render draws the payoff curve with a zero P/L reference line and vertical
// mark lines at the current price, break-even and strike, then writes the
// finished HTML page to w.
func (cs *ChartService) Render(w io.Writer, currentPrice float64, pos interfaces.OptionPosition) error {
	curve := cs.curves.Build(currentPrice, pos)
	breakEven := cs.calc.BreakEven(pos)

	cs.logger.WithFields(logrus.Fields{
		"type":       pos.Type,
		"side":       pos.Side,
		"break_even": breakEven,
		"samples":    len(curve),
	}).Info("Rendering payoff diagram")

	line := charts.NewLine()
	line.SetGlobalOptions(
		// 10x6 figure at 100px per unit
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: cs.Title(pos),
			Width:     "1000px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: cs.Title(pos),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Stock Price at Expiration",
			Type: "value",
			Min:  "dataMin",
			Max:  "dataMax",
			SplitLine: &opts.SplitLine{
				Show:      opts.Bool(true),
				LineStyle: &opts.LineStyle{Opacity: 0.3},
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Profit/Loss ($)",
			SplitLine: &opts.SplitLine{
				Show:      opts.Bool(true),
				LineStyle: &opts.LineStyle{Opacity: 0.3},
			},
		}),
	)

	points := make([]opts.LineData, 0, len(curve))
	for _, p := range curve {
		points = append(points, opts.LineData{Value: []float64{p.Price, p.ProfitLoss}})
	}

	line.AddSeries("Profit/Loss", points,
		charts.WithLineChartOpts(opts.LineChart{
			ShowSymbol: opts.Bool(false),
		}),
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
			Name:  "P/L = 0",
			YAxis: 0,
		}),
		charts.WithMarkLineNameXAxisItemOpts(
			opts.MarkLineNameXAxisItem{
				Name:  fmt.Sprintf("Current %.2f", currentPrice),
				XAxis: currentPrice,
			},
			opts.MarkLineNameXAxisItem{
				Name:  fmt.Sprintf("Break-Even %.2f", breakEven),
				XAxis: breakEven,
			},
			opts.MarkLineNameXAxisItem{
				Name:  fmt.Sprintf("Strike %.2f", pos.Strike),
				XAxis: pos.Strike,
			},
		),
	)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render payoff diagram: %w", err)
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
