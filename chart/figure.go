// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package chart lays a results table out as a grid of line charts: one column
// per benchmarked function and one row per metric, with input size on every
// X axis.
package chart

import (
	"fmt"
	"image/color"

	"github.com/petenewcomb/stockbench-go"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Metric selects which measurement a row of panels plots.
type Metric int

const (
	Time Metric = iota
	Memory
)

func (m Metric) String() string {
	switch m {
	case Time:
		return "time"
	case Memory:
		return "memory"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// Heading is the part of a panel title that follows the function name.
func (m Metric) Heading() string {
	switch m {
	case Time:
		return "Time Complexity"
	case Memory:
		return "Space Complexity"
	default:
		return m.String()
	}
}

// YLabel is the Y axis label of the metric's panels.
func (m Metric) YLabel() string {
	switch m {
	case Time:
		return "Time (ms)"
	case Memory:
		return "Memory (KB)"
	default:
		return m.String()
	}
}

// Glyph is the marker drawn at each point of the metric's panels.
func (m Metric) Glyph() draw.GlyphDrawer {
	if m == Memory {
		return draw.SquareGlyph{}
	}
	return draw.CircleGlyph{}
}

// Value extracts the metric from a row.
func (m Metric) Value(row stockbench.Row) float64 {
	if m == Memory {
		return row.MemoryKB
	}
	return row.TimeMs
}

// Series is one column of the figure.
type Series struct {
	Function string
	Color    color.Color
}

// Layout holds the constants that shape a figure.
type Layout struct {
	Title   string
	Series  []Series
	Metrics []Metric
	Width   vg.Length
	Height  vg.Length
	DPI     int
}

// DefaultLayout returns the stock market benchmark figure: 18x10 inches at
// 300 DPI, time on the top row and memory on the bottom row.
func DefaultLayout() Layout {
	return Layout{
		Title: "Stock Market System - Benchmark Results",
		Series: []Series{
			{Function: stockbench.StockSearch, Color: hexColor(0x2E86AB)},
			{Function: stockbench.BestBuySell, Color: hexColor(0xA23B72)},
			{Function: stockbench.StockSort, Color: hexColor(0xF18F01)},
		},
		Metrics: []Metric{Time, Memory},
		Width:   18 * vg.Inch,
		Height:  10 * vg.Inch,
		DPI:     300,
	}
}

func hexColor(rgb uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 0xff,
	}
}

// Panel is a single chart within a figure.
type Panel struct {
	Function string
	Metric   Metric
	Title    string
	XLabel   string
	YLabel   string
	Points   plotter.XYs
	Color    color.Color
}

// Figure is a grid of panels with a title. Panels[row][col] plots
// Layout.Metrics[row] for Layout.Series[col].
type Figure struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	DPI    int
	Panels [][]*Panel
}

// New builds a figure from the table. Each panel receives the rows of its
// function in table order; a function with no rows gets an empty panel.
func New(t *stockbench.Table, l Layout) *Figure {
	fig := &Figure{
		Title:  l.Title,
		Width:  l.Width,
		Height: l.Height,
		DPI:    l.DPI,
		Panels: make([][]*Panel, len(l.Metrics)),
	}

	rowsByFunction := make(map[string][]stockbench.Row, len(l.Series))
	for _, s := range l.Series {
		if _, ok := rowsByFunction[s.Function]; !ok {
			rowsByFunction[s.Function] = t.Filter(s.Function)
		}
	}

	for j, metric := range l.Metrics {
		fig.Panels[j] = make([]*Panel, len(l.Series))
		for i, s := range l.Series {
			rows := rowsByFunction[s.Function]
			points := make(plotter.XYs, len(rows))
			for k, row := range rows {
				points[k].X = float64(row.InputSize)
				points[k].Y = metric.Value(row)
			}
			fig.Panels[j][i] = &Panel{
				Function: s.Function,
				Metric:   metric,
				Title:    fmt.Sprintf("%s - %s", s.Function, metric.Heading()),
				XLabel:   "Input Size",
				YLabel:   metric.YLabel(),
				Points:   points,
				Color:    s.Color,
			}
		}
	}
	return fig
}

// Panel returns the panel plotting metric for function, or nil if the figure
// has none.
func (fig *Figure) Panel(metric Metric, function string) *Panel {
	for _, row := range fig.Panels {
		for _, p := range row {
			if p.Metric == metric && p.Function == function {
				return p
			}
		}
	}
	return nil
}
