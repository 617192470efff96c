package consts

const (
	CHARGE      = 1.6021918e-19 // Elementary charge (C)
	BOLTZMANN   = 1.3806226e-23 // Boltzmann constant (J/K)
	BOLTZMANNEV = 8.617332e-5   // Boltzmann constant (eV/K)
	KELVIN      = 273.15        // Kelvin temperature (K)
)
