package device

import (
	"fmt"
	"math"

	"github.com/edp1096/diode-iv/internal/consts"
	"github.com/edp1096/diode-iv/pkg/lambertw"
	"github.com/edp1096/diode-iv/pkg/util"
)

// Diode holds the parameters of the single-diode equivalent circuit:
// a photocurrent source, an ideal junction and the parasitic series
// and shunt resistances, normalized to the device area.
type Diode struct {
	N    float64 // Ideality factor / emission coefficient
	Temp float64 // Junction temperature (K)
	Is   float64 // Saturation current (A)
	Iph  float64 // Photogenerated current (A)
	Rs   float64 // Series resistance (ohm)
	Rsh  float64 // Shunt resistance (ohm)
	Area float64 // Device area (cm^2)
}

// Beyond this the exponent is evaluated through the log-domain
// Lambert W form instead of exp().
const maxExpArg = 709.0

func DefaultDiode() *Diode {
	return &Diode{
		N:    1.0,
		Temp: 300.0,
		Is:   1e-9,
		Iph:  0.0,
		Rs:   10.0,
		Rsh:  1e6,
		Area: 1.0,
	}
}

// NewDiode builds a diode from a parameter map with the recognized
// keys n, T, I_0, I_ph, R_s, R_sh and area. Absent keys keep their
// defaults, unknown keys are ignored.
func NewDiode(params map[string]float64) (*Diode, error) {
	d := DefaultDiode()
	d.SetModelParameters(params)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Diode) SetModelParameters(params map[string]float64) {
	if n, ok := params["n"]; ok {
		d.N = n
	}
	if t, ok := params["T"]; ok {
		d.Temp = t
	}
	if is, ok := params["I_0"]; ok {
		d.Is = is
	}
	if iph, ok := params["I_ph"]; ok {
		d.Iph = iph
	}
	if rs, ok := params["R_s"]; ok {
		d.Rs = rs
	}
	if rsh, ok := params["R_sh"]; ok {
		d.Rsh = rsh
	}
	if area, ok := params["area"]; ok {
		d.Area = area
	}
}

// Validate checks the physical domain of every parameter. Values that
// would divide by zero or drive the solve into NaN are rejected here,
// before any sweep runs.
func (d *Diode) Validate() error {
	checks := []struct {
		param  string
		value  float64
		ok     bool
		reason string
	}{
		{"n", d.N, d.N > 0, "must be positive"},
		{"T", d.Temp, d.Temp > 0, "must be positive"},
		{"I_0", d.Is, d.Is >= 0, "must not be negative"},
		{"I_ph", d.Iph, d.Iph >= 0, "must not be negative"},
		{"R_s", d.Rs, d.Rs >= 0, "must not be negative"},
		{"R_sh", d.Rsh, d.Rsh > 0, "must be positive"},
		{"area", d.Area, d.Area > 0, "must be positive"},
	}
	for _, c := range checks {
		if !c.ok || math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return &InvalidParameterError{Param: c.param, Value: c.value, Reason: c.reason}
		}
	}
	return nil
}

func (d *Diode) ThermalVoltage() float64 {
	return consts.BOLTZMANNEV * d.Temp
}

// CurrentAt solves the single-diode equation at terminal voltage v and
// returns the conventional device current (forward current positive).
//
// With Rs > 0 the current appears both linearly and inside the
// exponential, so the implicit equation is resolved through the
// principal branch of the Lambert W function:
//
//	z = (Rs*Is)/(n*Vth) * exp((Rs*(Iph+Is)+V) / (n*Vth*(1+Rs/Rsh)))
//	I = ((Iph+Is) - V/Rsh)/(1+Rs/Rsh) - (n*Vth/Rs)*W0(z)
//
// The derivation yields the negative of the reported current, so the
// result is negated before returning.
func (d *Diode) CurrentAt(v float64) (float64, error) {
	nvt := d.N * d.ThermalVoltage()

	if d.Rs == 0 {
		// No implicit self-reference without a series drop; the
		// explicit Shockley form applies directly.
		i := d.Iph - d.Is*(math.Exp(v/nvt)-1) - v/d.Rsh
		return d.report(i, v)
	}

	k := 1 + d.Rs/d.Rsh

	// The W argument is assembled in log domain so an overflowing
	// exponent switches to the log-domain evaluation instead of
	// producing +Inf.
	lz := math.Log(d.Rs*d.Is/nvt) + (d.Rs*(d.Iph+d.Is)+v)/(nvt*k)

	var w float64
	var err error
	if lz > maxExpArg {
		w, err = lambertw.W0FromLog(lz)
	} else {
		w, err = lambertw.W0(math.Exp(lz))
	}
	if err != nil {
		return 0, fmt.Errorf("lambert w at V=%g: %w", v, err)
	}

	i := ((d.Iph+d.Is)-v/d.Rsh)/k - nvt/d.Rs*w
	return d.report(i, v)
}

func (d *Diode) report(i, v float64) (float64, error) {
	i = -i
	if math.IsNaN(i) || math.IsInf(i, 0) {
		return 0, fmt.Errorf("non-finite current at V=%g", v)
	}
	return i, nil
}

// JunctionCurrent returns the ideal junction current at junction
// voltage vd, used when the diode is stamped into a nodal matrix.
func (d *Diode) JunctionCurrent(vd float64) float64 {
	arg := vd / (d.N * d.ThermalVoltage())
	if arg > 40.0 {
		arg = 40.0
	}
	return d.Is * (math.Exp(arg) - 1.0)
}

// JunctionConductance returns dI/dV of the junction at vd.
func (d *Diode) JunctionConductance(vd float64) float64 {
	nvt := d.N * d.ThermalVoltage()
	arg := vd / nvt
	if arg > 40.0 {
		arg = 40.0
	}
	return d.Is * math.Exp(arg) / nvt
}

func (d *Diode) String() string {
	return "Diode with parameters:\n" +
		fmt.Sprintf("   n = %g\n", d.N) +
		fmt.Sprintf("   T = %g K\n", d.Temp) +
		fmt.Sprintf(" I_0 = %s\n", util.FormatValueFactor(d.Is, "A")) +
		fmt.Sprintf("I_ph = %s\n", util.FormatValueFactor(d.Iph, "A")) +
		fmt.Sprintf(" R_s = %g ohm\n", d.Rs) +
		fmt.Sprintf("R_sh = %g ohm\n", d.Rsh) +
		fmt.Sprintf("area = %g cm^2\n", d.Area)
}
