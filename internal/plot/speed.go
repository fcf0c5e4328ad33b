package plot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/slcs-jsc/netcdf-bench/internal/models"
)

// Styling follows the study's conventions: red for 3x3 grids, blue
// otherwise; solid lines for halo 2, dashed otherwise; independent access on
// the top panel, collective access on the bottom. Both panels share the same
// speed scale.

// RenderSpeedOverTime draws the throughput-over-time figure for the given
// groups and writes it to path (.svg or .png, chosen by extension). For
// every group with at least one timestamped run it also prints the mean and
// spread of the plotted speeds to w.
func RenderSpeedOverTime(w io.Writer, groups []models.ConfigGroup, path string) error {
	ind := newSpeedPlot("Independent Access")
	col := newSpeedPlot("Collective Access")

	yLo, yHi := math.Inf(1), math.Inf(-1)

	for _, g := range groups {
		points := lo.Filter(g.Points, func(p models.RunPoint, _ int) bool {
			return !p.Time.IsZero()
		})
		if len(points) == 0 {
			continue
		}

		speeds := lo.Map(points, func(p models.RunPoint, _ int) float64 { return p.Speed })
		fmt.Fprintf(w, "%s: I/O Speed = (%.2f ± %.2f) MB/s\n",
			g.Config, stat.Mean(speeds, nil), stat.PopStdDev(speeds, nil))

		for _, p := range points {
			yLo = math.Min(yLo, p.Speed-p.Uncertainty)
			yHi = math.Max(yHi, p.Speed+p.Uncertainty)
		}

		target := col
		if g.Independent {
			target = ind
		}
		if err := addSeries(target, g.Config, points); err != nil {
			return fmt.Errorf("failed to build series for %s: %w", g.Config, err)
		}
	}

	if yLo <= yHi {
		pad := 0.05 * (yHi - yLo)
		if pad == 0 {
			pad = 1
		}
		for _, p := range []*gplot.Plot{ind, col} {
			p.Y.Min = yLo - pad
			p.Y.Max = yHi + pad
		}
	}

	return writeFigure(ind, col, path)
}

func newSpeedPlot(title string) *gplot.Plot {
	p := gplot.New()
	p.Title.Text = title
	p.Y.Label.Text = "I/O Speed (MB/s)"
	p.X.Tick.Marker = gplot.TimeTicks{Format: "2006-01-02\n15:04"}
	p.Legend.Top = true
	return p
}

// addSeries draws one configuration as a line with x markers plus a shaded
// band of plus/minus one uncertainty around it.
func addSeries(p *gplot.Plot, config string, points []models.RunPoint) error {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = float64(pt.Time.Unix())
		xys[i].Y = pt.Speed
	}

	// The band polygon walks the upper edge forward and the lower edge back.
	band := make(plotter.XYs, 0, 2*len(points))
	for _, pt := range points {
		band = append(band, plotter.XY{X: float64(pt.Time.Unix()), Y: pt.Speed + pt.Uncertainty})
	}
	for i := len(points) - 1; i >= 0; i-- {
		pt := points[i]
		band = append(band, plotter.XY{X: float64(pt.Time.Unix()), Y: pt.Speed - pt.Uncertainty})
	}

	seriesColor := color.NRGBA{B: 255, A: 255}
	if strings.Contains(config, "3x3") {
		seriesColor = color.NRGBA{R: 255, A: 255}
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Color = seriesColor
	if !strings.Contains(config, "h=2") {
		line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Shape = draw.CrossGlyph{}
	scatter.GlyphStyle.Color = seriesColor

	fill := seriesColor
	fill.A = 51 // roughly 20% alpha
	poly, err := plotter.NewPolygon(band)
	if err != nil {
		return err
	}
	poly.Color = fill
	poly.LineStyle.Color = color.NRGBA{}

	p.Add(poly, line, scatter)
	p.Legend.Add(config, line, scatter)
	return nil
}

func writeFigure(ind, col *gplot.Plot, path string) error {
	const width, height = 12 * vg.Inch, 12 * vg.Inch

	plots := [][]*gplot.Plot{{ind}, {col}}
	tiles := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      5 * vg.Millimeter,
		PadTop:    5 * vg.Millimeter,
		PadBottom: 5 * vg.Millimeter,
		PadLeft:   5 * vg.Millimeter,
		PadRight:  5 * vg.Millimeter,
	}

	if strings.EqualFold(filepath.Ext(path), ".png") {
		img := vgimg.New(width, height)
		drawTiles(plots, tiles, draw.New(img))
		return writeTo(path, vgimg.PngCanvas{Canvas: img})
	}

	svg := vgsvg.New(width, height)
	drawTiles(plots, tiles, draw.New(svg))
	return writeTo(path, svg)
}

func drawTiles(plots [][]*gplot.Plot, tiles draw.Tiles, dc draw.Canvas) {
	canvases := gplot.Align(plots, tiles, dc)
	for i := range plots {
		for j, p := range plots[i] {
			p.Draw(canvases[i][j])
		}
	}
}

func writeTo(path string, c io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create plot file %s: %w", path, err)
	}
	if _, err := c.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write plot %s: %w", path, err)
	}
	return f.Close()
}
