package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/edp1096/diode-iv/pkg/device"
)

func writeCard(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "card.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCard(t, `
device:
  n: 1.66
  T: 200
  I_0: 3.32e-9
  R_sh: 6.36e3
sweep:
  start: -1.0
  stop: 0.5
  step: 0.05
plot:
  linear: out_lin.png
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	d, err := cfg.Diode()
	if err != nil {
		t.Fatalf("Diode: %v", err)
	}
	if d.N != 1.66 || d.Temp != 200 || d.Is != 3.32e-9 || d.Rsh != 6.36e3 {
		t.Errorf("card values not applied: %+v", d)
	}
	if d.Rs != 10.0 || d.Area != 1.0 {
		t.Errorf("absent keys must keep defaults: %+v", d)
	}

	spec := cfg.SweepSpec()
	if spec.Start != -1.0 || spec.Stop != 0.5 || spec.Step != 0.05 {
		t.Errorf("sweep overrides not applied: %+v", spec)
	}

	if cfg.Plot.Linear != "out_lin.png" || cfg.Plot.SemiLog != "" {
		t.Errorf("unexpected plot config: %+v", cfg.Plot)
	}
}

func TestSweepDefaultsWhenAbsent(t *testing.T) {
	path := writeCard(t, `
sweep:
  step: 0.1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	spec := cfg.SweepSpec()
	if spec.Start != -2.0 || spec.Stop != 1.0 {
		t.Errorf("absent bounds must keep defaults: %+v", spec)
	}
	if spec.Step != 0.1 {
		t.Errorf("step override not applied: %+v", spec)
	}
}

func TestLoadInvalidDevice(t *testing.T) {
	path := writeCard(t, `
device:
  R_sh: 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	var perr *device.InvalidParameterError
	if _, err := cfg.Diode(); !errors.As(err, &perr) {
		t.Errorf("got %v, want *device.InvalidParameterError", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeCard(t, "device: [not, a, map]")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
