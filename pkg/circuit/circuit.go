// Package circuit solves the single-diode equivalent circuit by
// modified nodal analysis, without the Lambert W substitution. It
// stamps the source, series resistance, junction, shunt resistance and
// photocurrent into a sparse matrix and iterates Newton-Raphson to the
// operating point. The closed-form solver and this path must agree;
// tests use that to cross-check both.
package circuit

import (
	"fmt"
	"math"

	"github.com/edp1096/diode-iv/pkg/device"
	"github.com/edp1096/diode-iv/pkg/matrix"
)

// Matrix layout: node 1 terminal, node 2 junction, row 3 the voltage
// source branch.
const matrixSize = 3

type Circuit struct {
	diode       *device.Diode
	mat         *matrix.CircuitMatrix
	vj          float64 // junction voltage estimate
	convergence struct {
		maxIter int
		abstol  float64
		reltol  float64
		gmin    float64
	}
}

func New(d *device.Diode) (*Circuit, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	c := &Circuit{diode: d}
	c.convergence.maxIter = 100
	c.convergence.abstol = 1e-12
	c.convergence.reltol = 1e-6
	c.convergence.gmin = 1e-12

	if d.Rs > 0 {
		mat, err := matrix.NewMatrix(matrixSize)
		if err != nil {
			return nil, err
		}
		mat.SetupElements()
		c.mat = mat
	}

	return c, nil
}

// OperatingPoint solves for the terminal current at bias v, in the
// same sign convention as Diode.CurrentAt (forward current positive).
func (c *Circuit) OperatingPoint(v float64) (float64, error) {
	d := c.diode

	// Without a series drop the terminal voltage is the junction
	// voltage and nothing is implicit.
	if d.Rs == 0 {
		return d.CurrentAt(v)
	}

	c.vj = 0
	var oldSolution []float64

	for iter := range c.convergence.maxIter {
		c.stamp(v)
		c.mat.LoadGmin(c.convergence.gmin)

		if err := c.mat.Solve(); err != nil {
			return 0, fmt.Errorf("operating point at V=%g: %v", v, err)
		}
		solution := c.mat.Solution()

		if iter > 0 && c.converged(oldSolution, solution) {
			return (solution[1] - solution[2]) / d.Rs, nil
		}

		if oldSolution == nil {
			oldSolution = make([]float64, len(solution))
		}
		copy(oldSolution, solution)
		c.vj = c.limitJunction(solution[2])
	}

	return 0, fmt.Errorf("operating point at V=%g: no convergence in %d iterations",
		v, c.convergence.maxIter)
}

func (c *Circuit) stamp(v float64) {
	d := c.diode
	gs := 1 / d.Rs
	gsh := 1 / d.Rsh
	id := d.JunctionCurrent(c.vj)
	gd := d.JunctionConductance(c.vj)

	m := c.mat
	m.Clear()

	// Series resistance between terminal and junction
	m.AddElement(1, 1, gs)
	m.AddElement(2, 2, gs)
	m.AddElement(1, 2, -gs)
	m.AddElement(2, 1, -gs)

	// Shunt resistance and linearized junction at node 2
	m.AddElement(2, 2, gsh)
	m.AddElement(2, 2, gd)
	m.AddRHS(2, -(id - gd*c.vj))

	// Photocurrent injects into the junction node
	m.AddRHS(2, d.Iph)

	// Voltage source branch
	m.AddElement(1, matrixSize, 1)
	m.AddElement(matrixSize, 1, 1)
	m.AddRHS(matrixSize, v)
}

func (c *Circuit) converged(oldSol, newSol []float64) bool {
	for i := 1; i < len(newSol) && i < len(oldSol); i++ {
		diff := math.Abs(newSol[i] - oldSol[i])
		limit := c.convergence.reltol*math.Max(math.Abs(newSol[i]), math.Abs(oldSol[i])) +
			c.convergence.abstol
		if diff > limit {
			return false
		}
	}
	return true
}

// limitJunction damps the Newton update of the junction voltage so the
// exponential cannot run away between iterations.
func (c *Circuit) limitJunction(vnew float64) float64 {
	d := c.diode
	vt := d.N * d.ThermalVoltage()
	vold := c.vj

	vcrit := vt * math.Log(vt/(math.Sqrt2*d.Is))
	if vnew > vcrit && math.Abs(vnew-vold) > 2*vt {
		if vold > 0 {
			arg := 1 + (vnew-vold)/vt
			if arg > 0 {
				vnew = vold + vt*math.Log(arg)
			} else {
				vnew = vcrit
			}
		} else {
			vnew = vt * math.Log(vnew/vt)
		}
	}
	return vnew
}

func (c *Circuit) Destroy() {
	if c.mat != nil {
		c.mat.Destroy()
	}
}
