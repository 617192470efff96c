package device

import "fmt"

// InvalidParameterError reports a physical parameter outside its
// domain. It is raised at construction time so a bad parameter set
// never reaches a solve.
type InvalidParameterError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("diode parameter %s = %g: %s", e.Param, e.Value, e.Reason)
}
