package chart

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/arloliu/isofit/errs"
	"github.com/arloliu/isofit/isotherm"
)

const (
	// DefaultWidth is the image width used by Save.
	DefaultWidth = 6 * vg.Inch
	// DefaultHeight is the image height used by Save.
	DefaultHeight = 4 * vg.Inch
)

// Parity plots calculated against empirical dimensionless loading with the
// identity line. Unary points and mixture points use different glyphs.
func Parity(data isotherm.PlotData, title string) (*plot.Plot, error) {
	if err := check(data); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "θ empirical"
	p.Y.Label.Text = "θ calculated"
	p.Add(plotter.NewGrid())

	pure, mixed := split(data, data.Theta, data.ThetaCalc)
	if err := addScatter(p, "unary", pure, 0, draw.CircleGlyph{}); err != nil {
		return nil, err
	}
	if err := addScatter(p, "mixture", mixed, 1, draw.TriangleGlyph{}); err != nil {
		return nil, err
	}

	upper := 1.05 * max(floats.Max(data.Theta), floats.Max(data.ThetaCalc))
	p.X.Min, p.X.Max = 0, upper
	p.Y.Min, p.Y.Max = 0, upper

	identity := plotter.NewFunction(func(x float64) float64 { return x })
	identity.Color = plotutil.Color(2)
	identity.Dashes = plotutil.Dashes(1)
	p.Add(identity)
	p.Legend.Add("y = x", identity)
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

// Isotherm plots empirical and calculated loading in raw units against the
// own fugacity.
//
// Parameters:
//   - data: Plot data of a solved model
//   - title: Plot title
//   - fugacityUnit: Unit label of the fugacity axis, e.g. "Pa"
//   - loadingUnit: Unit label of the loading axis, e.g. "mmol/g"
func Isotherm(data isotherm.PlotData, title, fugacityUnit, loadingUnit string) (*plot.Plot, error) {
	if err := check(data); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = axisLabel("fugacity", fugacityUnit)
	p.Y.Label.Text = axisLabel("loading", loadingUnit)
	p.Add(plotter.NewGrid())

	pure, mixed := split(data, data.OwnFugacity, data.Loading)
	if err := addScatter(p, "unary", pure, 0, draw.CircleGlyph{}); err != nil {
		return nil, err
	}
	if err := addScatter(p, "mixture", mixed, 1, draw.TriangleGlyph{}); err != nil {
		return nil, err
	}
	if err := addScatter(p, "calculated", pairs(data.OwnFugacity, data.LoadingCalc), 2, draw.CrossGlyph{}); err != nil {
		return nil, err
	}

	p.X.Min, p.Y.Min = 0, 0
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

// Save writes p to path using DefaultWidth and DefaultHeight. The image
// format follows the file extension.
func Save(p *plot.Plot, path string) error {
	if err := p.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}

	return nil
}

func check(data isotherm.PlotData) error {
	n := len(data.Theta)
	if n == 0 {
		return fmt.Errorf("no points to plot: %w", errs.ErrInputShape)
	}
	for _, l := range []int{len(data.ThetaCalc), len(data.OwnFugacity), len(data.Loading), len(data.LoadingCalc), len(data.Pure)} {
		if l != n {
			return fmt.Errorf("plot series lengths differ: %w", errs.ErrInputShape)
		}
	}

	return nil
}

func axisLabel(name, unit string) string {
	if unit == "" {
		return name
	}

	return fmt.Sprintf("%s [%s]", name, unit)
}

func split(data isotherm.PlotData, x, y []float64) (pure, mixed plotter.XYs) {
	for i := range x {
		pt := plotter.XY{X: x[i], Y: y[i]}
		if data.Pure[i] {
			pure = append(pure, pt)
		} else {
			mixed = append(mixed, pt)
		}
	}

	return pure, mixed
}

func pairs(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}

	return pts
}

func addScatter(p *plot.Plot, name string, pts plotter.XYs, color int, shape draw.GlyphDrawer) error {
	if len(pts) == 0 {
		return nil
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("%s series: %w", name, err)
	}
	s.GlyphStyle.Color = plotutil.Color(color)
	s.GlyphStyle.Shape = shape
	s.GlyphStyle.Radius = vg.Points(3)
	p.Add(s)
	p.Legend.Add(name, s)

	return nil
}
