package analysis

import (
	"fmt"
	"math"
)

// SweepSpec describes a voltage sweep with half-open range semantics:
// samples run from Start up to but not including Stop.
type SweepSpec struct {
	Start float64 // V
	Stop  float64 // V, exclusive
	Step  float64 // V, > 0
}

func DefaultSweep() SweepSpec {
	return SweepSpec{Start: -2.0, Stop: 1.0, Step: 0.01}
}

func (s SweepSpec) Validate() error {
	if math.IsNaN(s.Start) || math.IsNaN(s.Stop) || math.IsNaN(s.Step) ||
		math.IsInf(s.Start, 0) || math.IsInf(s.Stop, 0) || math.IsInf(s.Step, 0) {
		return fmt.Errorf("sweep bounds must be finite")
	}
	if s.Step <= 0 {
		return fmt.Errorf("sweep step %g: must be positive", s.Step)
	}
	if s.Stop <= s.Start {
		return fmt.Errorf("sweep range [%g, %g): stop must exceed start", s.Start, s.Stop)
	}
	return nil
}

// Points returns ceil((Stop-Start)/Step), the sample count of the
// half-open range.
func (s SweepSpec) Points() int {
	return int(math.Ceil((s.Stop - s.Start) / s.Step))
}

// Values generates the voltage samples. Each sample is computed from
// the index so step rounding does not accumulate across the sweep.
func (s SweepSpec) Values() []float64 {
	n := s.Points()
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = s.Start + float64(i)*s.Step
	}
	return vals
}
