package oerror

import "fmt"

// KineticError is the error type returned by the kinetic packages for decoding and invariant failures.
type KineticError struct {
	Err string
}

// New returns a new KineticError with the formatted message.
func New(format string, args ...interface{}) *KineticError {
	return &KineticError{Err: fmt.Sprintf(format, args...)}
}

func (e *KineticError) Error() string {
	return e.Err
}
