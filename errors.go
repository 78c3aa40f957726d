package montgomery

import "fmt"

// InvalidModulusError reports a modulus that fails a variant's precondition
// (must be odd, and within that variant's specific range restriction).
type InvalidModulusError struct {
	Variant string
	N       uint64
	Reason  string
}

func (e *InvalidModulusError) Error() string {
	return fmt.Sprintf("montgomery: invalid modulus %d for %s: %s", e.N, e.Variant, e.Reason)
}

// InvalidValueError reports a value outside the domain an operation requires
// (e.g. a plain value passed to ConvertIn that is not in [0, n)).
type InvalidValueError struct {
	Reason string
}

func (e *InvalidValueError) Error() string {
	return "montgomery: invalid value: " + e.Reason
}
