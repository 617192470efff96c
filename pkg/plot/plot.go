// Package plot renders computed I-V curves. It consumes the
// voltage/current series contract only and has no feedback into the
// solver.
package plot

import (
	"fmt"
	"math"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/edp1096/diode-iv/pkg/analysis"
)

// Options configure a single figure. YScale is "linear" or "log";
// empty means linear.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	YScale string
}

// Render draws one voltage/current series to an image file. On a log
// axis the magnitude of each sample is drawn and non-positive
// magnitudes are dropped, since a log axis cannot carry them.
func Render(voltages, currents []float64, opts Options, path string) error {
	if len(voltages) != len(currents) {
		return fmt.Errorf("series length mismatch: %d voltages, %d currents",
			len(voltages), len(currents))
	}

	logScale := false
	switch opts.YScale {
	case "", "linear":
	case "log":
		logScale = true
	default:
		return fmt.Errorf("unknown yscale %q", opts.YScale)
	}

	xys := make(plotter.XYs, 0, len(voltages))
	for i := range voltages {
		y := currents[i]
		if logScale {
			y = math.Abs(y)
			if y <= 0 {
				continue
			}
		}
		xys = append(xys, plotter.XY{X: voltages[i], Y: y})
	}
	if len(xys) == 0 {
		return fmt.Errorf("no drawable samples for %q", opts.Title)
	}

	p := gplot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("building line: %v", err)
	}
	p.Add(plotter.NewGrid(), line)

	if logScale {
		p.Y.Scale = gplot.LogScale{}
		p.Y.Tick.Marker = gplot.LogTicks{Prec: -1}
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// Linear writes the conventional current vs voltage figure.
func Linear(curve *analysis.Curve, path string) error {
	return Render(curve.Voltages, curve.Currents, Options{
		Title:  "Linear Current vs. Voltage",
		XLabel: "voltage / [V]",
		YLabel: "current / [A]",
	}, path)
}

// SemiLog writes the |current| vs voltage figure on a log axis.
func SemiLog(curve *analysis.Curve, path string) error {
	return Render(curve.Voltages, curve.Currents, Options{
		Title:  "Semi-log Current vs. Voltage",
		XLabel: "voltage / [V]",
		YLabel: "|current| / [A]",
		YScale: "log",
	}, path)
}
