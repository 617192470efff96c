package analysis

// Curve is the result of one I-V solve: voltage samples in ascending
// sweep order, the terminal current at each sample and the current
// density (current over device area) on the same voltage axis. All
// three slices have equal length. A Curve is built fresh by each solve
// and not mutated afterward.
type Curve struct {
	Voltages []float64 // V
	Currents []float64 // A
	Density  []float64 // A/cm^2
}

func (c *Curve) Len() int {
	return len(c.Voltages)
}
