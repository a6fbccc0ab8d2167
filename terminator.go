// Package terminator makes a program's final error report show an error's
// plain message instead of a debug dump.
//
// Anything that prints an error with the verbose verbs (%+v, %#v) — test
// harnesses, panic values, errors carrying their own Format methods — exposes
// internal structure that end users should never see. Wrapping the error in a
// Terminator redirects those verbs to the error's Error() text, so whatever
// reports it at the top of the program prints clean output.
//
// The intended idiom is to Wrap at the propagation point and hand the result
// to Main:
//
//	func main() {
//		terminator.Main(run)
//	}
//
//	func run() error {
//		if err := doWork(); err != nil {
//			return terminator.Wrap(err)
//		}
//		return nil
//	}
package terminator

import (
	"errors"
	"fmt"
	"io"
)

// Terminator holds a single error and renders its plain message for every
// formatting verb, the verbose ones included.
type Terminator struct {
	err error
}

// Wrap boxes err in a Terminator. It never fails: a nil err returns nil, and
// an err that is already a *Terminator is returned unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*Terminator); ok {
		return err
	}
	return &Terminator{err: err}
}

func (t *Terminator) Error() string {
	return t.err.Error()
}

// Format implements fmt.Formatter so that the debug-oriented verbs produce
// the same bytes as the plain message. %q quotes that message.
func (t *Terminator) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		io.WriteString(f, t.err.Error())
	case 'q':
		fmt.Fprintf(f, "%q", t.err.Error())
	}
}

// Unwrap reports the wrapped error's own cause, nil when it has none. The
// Terminator stands in for the wrapped error rather than adding a link of its
// own, so the wrapped value itself is not recoverable; its causes below stay
// reachable through errors.Is and errors.As.
func (t *Terminator) Unwrap() error {
	return errors.Unwrap(t.err)
}
