package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/edp1096/diode-iv/pkg/analysis"
	"github.com/edp1096/diode-iv/pkg/device"
)

func testCurve(t *testing.T) *analysis.Curve {
	t.Helper()
	d, err := device.NewDiode(nil)
	if err != nil {
		t.Fatal(err)
	}
	curve, err := analysis.Solve(d, analysis.SweepSpec{Start: -0.5, Stop: 0.5, Step: 0.05})
	if err != nil {
		t.Fatal(err)
	}
	return curve
}

func checkFigure(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("figure not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("figure %s is empty", path)
	}
}

func TestLinearFigure(t *testing.T) {
	curve := testCurve(t)
	path := filepath.Join(t.TempDir(), "linear.png")
	if err := Linear(curve, path); err != nil {
		t.Fatalf("Linear: %v", err)
	}
	checkFigure(t, path)
}

func TestSemiLogFigure(t *testing.T) {
	curve := testCurve(t)
	path := filepath.Join(t.TempDir(), "semilog.png")
	if err := SemiLog(curve, path); err != nil {
		t.Fatalf("SemiLog: %v", err)
	}
	checkFigure(t, path)
}

func TestRenderOptions(t *testing.T) {
	curve := testCurve(t)
	path := filepath.Join(t.TempDir(), "custom.png")
	opts := Options{Title: "JV", XLabel: "voltage / [V]", YLabel: "density / [A/cm2]"}
	if err := Render(curve.Voltages, curve.Density, opts, path); err != nil {
		t.Fatalf("Render: %v", err)
	}
	checkFigure(t, path)
}

func TestRenderRejectsMismatchedSeries(t *testing.T) {
	err := Render([]float64{0, 1}, []float64{0}, Options{}, "unused.png")
	if err == nil {
		t.Error("expected length mismatch error")
	}
}

func TestRenderRejectsUnknownScale(t *testing.T) {
	err := Render([]float64{0, 1}, []float64{1, 2}, Options{YScale: "cubic"}, "unused.png")
	if err == nil {
		t.Error("expected unknown yscale error")
	}
}

func TestRenderLogWithoutPositiveSamples(t *testing.T) {
	err := Render([]float64{0, 1}, []float64{0, 0}, Options{YScale: "log"}, "unused.png")
	if err == nil {
		t.Error("expected error for log axis with no drawable samples")
	}
}
