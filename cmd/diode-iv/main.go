package main

import (
	"flag"
	"fmt"
	"log"

	"gonum.org/v1/gonum/floats"

	"github.com/edp1096/diode-iv/pkg/analysis"
	"github.com/edp1096/diode-iv/pkg/config"
	"github.com/edp1096/diode-iv/pkg/device"
	"github.com/edp1096/diode-iv/pkg/plot"
	"github.com/edp1096/diode-iv/pkg/util"
)

var (
	configPath = flag.String("config", "", "YAML parameter card (overrides device/sweep flags)")

	idealityN = flag.Float64("n", 1.0, "ideality factor")
	temp      = flag.Float64("T", 300.0, "temperature (K)")
	isat      = flag.Float64("i0", 1e-9, "saturation current (A)")
	iph       = flag.Float64("iph", 0.0, "photocurrent (A)")
	rs        = flag.Float64("rs", 10.0, "series resistance (ohm)")
	rsh       = flag.Float64("rsh", 1e6, "shunt resistance (ohm)")
	area      = flag.Float64("area", 1.0, "device area (cm^2)")

	vmin = flag.Float64("vmin", -2.0, "sweep start (V)")
	vmax = flag.Float64("vmax", 1.0, "sweep stop (V, exclusive)")
	step = flag.Float64("step", 0.01, "sweep step (V)")

	linearOut  = flag.String("linear", "iv_linear.png", "linear figure output, empty to skip")
	semilogOut = flag.String("semilog", "iv_semilog.png", "semi-log figure output, empty to skip")
	printTable = flag.Bool("print", false, "print the full result table")
)

func buildRun() (*device.Diode, analysis.SweepSpec, string, string, error) {
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return nil, analysis.SweepSpec{}, "", "", err
		}
		d, err := cfg.Diode()
		if err != nil {
			return nil, analysis.SweepSpec{}, "", "", err
		}
		linear, semilog := *linearOut, *semilogOut
		if cfg.Plot.Linear != "" {
			linear = cfg.Plot.Linear
		}
		if cfg.Plot.SemiLog != "" {
			semilog = cfg.Plot.SemiLog
		}
		return d, cfg.SweepSpec(), linear, semilog, nil
	}

	d, err := device.NewDiode(map[string]float64{
		"n":    *idealityN,
		"T":    *temp,
		"I_0":  *isat,
		"I_ph": *iph,
		"R_s":  *rs,
		"R_sh": *rsh,
		"area": *area,
	})
	if err != nil {
		return nil, analysis.SweepSpec{}, "", "", err
	}
	spec := analysis.SweepSpec{Start: *vmin, Stop: *vmax, Step: *step}
	return d, spec, *linearOut, *semilogOut, nil
}

func printResults(results map[string][]float64) {
	sweep1 := results["SWEEP1"]
	currents := results["I(D)"]
	density := results["J(D)"]

	fmt.Printf("\nIV Sweep Results (%d points):\n", len(sweep1))
	fmt.Println("Voltage       Current       Density")
	fmt.Println("------------------------------------------------")
	for i := range sweep1 {
		fmt.Printf("V=%-10s  I(D)=%-12s  J(D)=%s A/cm2\n",
			util.FormatValueFactor(sweep1[i], "V"),
			util.FormatValueFactor(currents[i], "A"),
			util.FormatMagnitude(density[i]))
	}
}

func printSummary(curve *analysis.Curve) {
	fmt.Printf("\nIV sweep: %d points, %s to %s\n",
		curve.Len(),
		util.FormatValueFactor(curve.Voltages[0], "V"),
		util.FormatValueFactor(curve.Voltages[curve.Len()-1], "V"))
	fmt.Printf("Current range: %s to %s\n",
		util.FormatValueFactor(floats.Min(curve.Currents), "A"),
		util.FormatValueFactor(floats.Max(curve.Currents), "A"))
}

func main() {
	flag.Parse()

	diode, spec, linear, semilog, err := buildRun()
	if err != nil {
		log.Fatalf("Error setting up run: %v", err)
	}

	fmt.Print(diode)

	sweep := analysis.NewIVSweep(spec)
	if err := sweep.Setup(diode); err != nil {
		log.Fatalf("Sweep setup failed: %v", err)
	}
	if err := sweep.Execute(); err != nil {
		log.Fatalf("Sweep execution failed: %v", err)
	}

	curve := sweep.Curve()
	if *printTable {
		printResults(sweep.GetResults())
	} else {
		printSummary(curve)
	}

	if linear != "" {
		if err := plot.Linear(curve, linear); err != nil {
			log.Fatalf("Error writing linear figure: %v", err)
		}
		fmt.Printf("Wrote %s\n", linear)
	}
	if semilog != "" {
		if err := plot.SemiLog(curve, semilog); err != nil {
			log.Fatalf("Error writing semi-log figure: %v", err)
		}
		fmt.Printf("Wrote %s\n", semilog)
	}
}
