package assert

import "github.com/oomph-ac/kinetic/oerror"

// IsTrue panics with a *oerror.KineticError if ok is false.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
