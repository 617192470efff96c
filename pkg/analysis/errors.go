package analysis

import "fmt"

// NumericInstabilityError reports a voltage sample whose closed-form
// evaluation produced a non-finite current. The parameter combination
// is outside the region where the Lambert W form is numerically valid;
// there is nothing transient to retry against.
type NumericInstabilityError struct {
	Voltage float64
	Err     error
}

func (e *NumericInstabilityError) Error() string {
	return fmt.Sprintf("iv solve unstable at V=%g V: %v", e.Voltage, e.Err)
}

func (e *NumericInstabilityError) Unwrap() error {
	return e.Err
}
