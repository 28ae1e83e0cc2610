package observer

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrObserverPanicked is wrapped by every error SafeNotify reports for an observer whose Update panicked.
var ErrObserverPanicked = errors.New("observer panicked during update")

// PanicError describes one observer that panicked while SafeNotify was delivering to it.
type PanicError struct {
	// Observer is the observer whose Update panicked.
	Observer any

	// Recovered is the value passed to panic.
	Recovered any

	err error
}

func newPanicError(o any, recovered any) *PanicError {
	return &PanicError{
		Observer:  o,
		Recovered: recovered,
		err:       errors.Wrapf(ErrObserverPanicked, "%T: %v", o, recovered),
	}
}

func (e *PanicError) Error() string {
	return e.err.Error()
}

func (e *PanicError) Unwrap() error {
	return e.err
}

// Format prints the stack captured at recovery time with %+v.
func (e *PanicError) Format(s fmt.State, verb rune) {
	if f, ok := e.err.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	_, _ = fmt.Fprint(s, e.Error())
}
