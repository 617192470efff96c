package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/edp1096/diode-iv/pkg/device"
)

type Analysis interface {
	Setup(d *device.Diode) error
	Execute() error
	GetResults() map[string][]float64
}

// IVSweep computes the I-V characteristic of a diode over a voltage
// sweep. Results are keyed SWEEP1 (voltage), I(D) (current) and J(D)
// (current density).
type IVSweep struct {
	diode   *device.Diode
	spec    SweepSpec
	results map[string][]float64
	curve   *Curve
}

func NewIVSweep(spec SweepSpec) *IVSweep {
	return &IVSweep{
		spec:    spec,
		results: make(map[string][]float64),
	}
}

func (a *IVSweep) Setup(d *device.Diode) error {
	if d == nil {
		return fmt.Errorf("diode not set")
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if err := a.spec.Validate(); err != nil {
		return err
	}
	a.diode = d
	return nil
}

func (a *IVSweep) Execute() error {
	if a.diode == nil {
		return fmt.Errorf("diode not set")
	}

	curve, err := Solve(a.diode, a.spec)
	if err != nil {
		return err
	}

	a.curve = curve
	a.results["SWEEP1"] = curve.Voltages
	a.results["I(D)"] = curve.Currents
	a.results["J(D)"] = curve.Density
	return nil
}

func (a *IVSweep) GetResults() map[string][]float64 {
	return a.results
}

// Curve returns the result of the last Execute, or nil before it ran.
func (a *IVSweep) Curve() *Curve {
	return a.curve
}

// Solve evaluates the single-diode equation over the sweep and bundles
// the voltage, current and current-density series.
func Solve(d *device.Diode, spec SweepSpec) (*Curve, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	voltages := spec.Values()
	currents := make([]float64, len(voltages))
	for i, v := range voltages {
		c, err := d.CurrentAt(v)
		if err != nil {
			return nil, &NumericInstabilityError{Voltage: v, Err: err}
		}
		currents[i] = c
	}

	density := make([]float64, len(currents))
	copy(density, currents)
	floats.Scale(1/d.Area, density)

	return &Curve{Voltages: voltages, Currents: currents, Density: density}, nil
}
