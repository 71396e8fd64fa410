// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart

import (
	"context"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/petenewcomb/stockbench-go/internal/cerr"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const ErrUnsupportedFormat = cerr.Error("unsupported image format")

var (
	panelBackground = hexColor(0xf8f9fa)
	gridColor       = color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0x4d}

	lineWidth   = vg.Points(2)
	glyphRadius = vg.Points(4)
	titleSize   = vg.Points(16)
	figurePad   = vg.Points(12)
	tileGap     = vg.Points(24)
)

// background fills the data area of a plot, leaving the axes on the plot's
// own background.
type background struct {
	Color color.Color
}

func (b background) Plot(c draw.Canvas, _ *plot.Plot) {
	c.FillPolygon(b.Color, []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
	})
}

func setSans(sty *text.Style, weight xfont.Weight) {
	sty.Font.Variant = "Sans"
	sty.Font.Weight = weight
}

// Plot returns a styled gonum plot of the panel.
func (p *Panel) Plot() (*plot.Plot, error) {
	pl := plot.New()

	pl.Title.Text = p.Title
	pl.X.Label.Text = p.XLabel
	pl.Y.Label.Text = p.YLabel

	setSans(&pl.Title.TextStyle, xfont.WeightBold)
	setSans(&pl.X.Label.TextStyle, xfont.WeightNormal)
	setSans(&pl.Y.Label.TextStyle, xfont.WeightNormal)
	setSans(&pl.X.Tick.Label, xfont.WeightNormal)
	setSans(&pl.Y.Tick.Label, xfont.WeightNormal)

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	pl.Add(background{Color: panelBackground}, grid)

	if len(p.Points) == 0 {
		pl.X.Min, pl.X.Max = 0, 1
		pl.Y.Min, pl.Y.Max = 0, 1
		return pl, nil
	}

	line, points, err := plotter.NewLinePoints(p.Points)
	if err != nil {
		return nil, errors.Wrapf(err, "plotting %s", p.Title)
	}
	line.Color = p.Color
	line.Width = lineWidth
	points.Shape = p.Metric.Glyph()
	points.Radius = glyphRadius
	points.Color = p.Color
	pl.Add(line, points)

	widen(&pl.X)
	widen(&pl.Y)
	return pl, nil
}

// widen gives a degenerate axis range some extent so that ticks can be laid
// out around a single value.
func widen(a *plot.Axis) {
	if a.Min == a.Max {
		a.Min--
		a.Max++
	}
}

// Plots returns the styled plots of every panel, in the same arrangement as
// Panels.
func (fig *Figure) Plots() ([][]*plot.Plot, error) {
	plots := make([][]*plot.Plot, len(fig.Panels))
	for j, row := range fig.Panels {
		plots[j] = make([]*plot.Plot, len(row))
		for i, panel := range row {
			pl, err := panel.Plot()
			if err != nil {
				return nil, err
			}
			plots[j][i] = pl
		}
	}
	return plots, nil
}

func (fig *Figure) titleStyle() text.Style {
	return text.Style{
		Color: color.Black,
		Font: font.From(font.Font{
			Typeface: "Liberation",
			Variant:  "Sans",
			Weight:   xfont.WeightBold,
		}, titleSize),
		XAlign:  text.XCenter,
		YAlign:  text.YTop,
		Handler: plot.DefaultTextHandler,
	}
}

// Render draws the figure onto dc: the title centered across the top and the
// panels aligned in a grid beneath it.
func Render(fig *Figure, dc draw.Canvas) error {
	plots, err := fig.Plots()
	if err != nil {
		return err
	}
	if len(plots) == 0 || len(plots[0]) == 0 {
		return nil
	}

	sty := fig.titleStyle()
	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      len(plots[0]),
		PadTop:    sty.Height(fig.Title) + 2*figurePad,
		PadBottom: figurePad,
		PadLeft:   figurePad,
		PadRight:  figurePad,
		PadX:      tileGap,
		PadY:      tileGap,
	}

	canvases := plot.Align(plots, tiles, dc)
	for j := range plots {
		for i := range plots[j] {
			plots[j][i].Draw(canvases[j][i])
		}
	}

	dc.FillText(sty, vg.Point{
		X: (dc.Min.X + dc.Max.X) / 2,
		Y: dc.Max.Y - figurePad,
	}, fig.Title)
	return nil
}

func newCanvas(fig *Figure, format string) (vg.CanvasWriterTo, error) {
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		c := vgimg.NewWith(vgimg.UseWH(fig.Width, fig.Height), vgimg.UseDPI(fig.DPI))
		switch format {
		case "png":
			return vgimg.PngCanvas{Canvas: c}, nil
		case "jpg", "jpeg":
			return vgimg.JpegCanvas{Canvas: c}, nil
		default:
			return vgimg.TiffCanvas{Canvas: c}, nil
		}
	case "svg", "pdf", "eps":
		return draw.NewFormattedCanvas(fig.Width, fig.Height, format)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}

// WriteTo renders the figure in the given image format and writes it to w.
// Raster formats (png, jpg, jpeg, tif, tiff) are drawn at the figure's DPI;
// svg, pdf and eps are resolution independent.
func WriteTo(w io.Writer, fig *Figure, format string) (int64, error) {
	c, err := newCanvas(fig, strings.ToLower(format))
	if err != nil {
		return 0, err
	}
	if err := Render(fig, draw.New(c)); err != nil {
		return 0, err
	}
	return c.WriteTo(w)
}

// Save writes the figure to path in the format named by its extension.
func Save(ctx context.Context, fig *Figure, path string) (err error) {
	_, span := otel.Tracer("github.com/petenewcomb/stockbench-go/chart").Start(ctx, "Save",
		trace.WithAttributes(
			attribute.String("path", path),
			attribute.Int("dpi", fig.DPI),
		))
	defer span.End()

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	c, err := newCanvas(fig, format)
	if err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	if err := Render(fig, draw.New(c)); err != nil {
		span.RecordError(err)
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating image file")
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "closing %s", path)
		}
	}()

	n, err := c.WriteTo(f)
	if err != nil {
		span.RecordError(err)
		return errors.Wrapf(err, "writing %s", path)
	}
	span.SetAttributes(attribute.Int64("bytes", n))
	zap.L().Debug("Wrote figure",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int64("bytes", n))
	return nil
}
