package util

import "testing"

func TestFormatValueFactor(t *testing.T) {
	cases := []struct {
		value float64
		unit  string
		want  string
	}{
		{1.5, "V", "1.500 V"},
		{0.001234, "V", "1.234 mV"},
		{2.5e-6, "A", "2.500 uA"},
		{1e-9, "A", "1.000 nA"},
		{3.3e-12, "A", "3.300 pA"},
		{-0.02, "V", "-20.000 mV"},
	}

	for _, c := range cases {
		if got := FormatValueFactor(c.value, c.unit); got != c.want {
			t.Errorf("FormatValueFactor(%v, %q) = %q, want %q", c.value, c.unit, got, c.want)
		}
	}
}

func TestFormatMagnitude(t *testing.T) {
	if got := FormatMagnitude(5.43e-5); got != "5.43e-05" {
		t.Errorf("FormatMagnitude(5.43e-5) = %q", got)
	}
}
