package fastgraph

import (
	"fmt"
)

import (
	"github.com/timtadh/data-structures/errors"
)

type ErrorKind int

const (
	// a structural requirement of the input was violated, eg. a dangling
	// edge endpoint or a disconnected graph where connectivity is required
	StructuralPrecondition ErrorKind = iota + 1
	// a caller supplied parameter is out of range or inconsistent
	InvalidArgument
)

func (k ErrorKind) String() string {
	switch k {
	case StructuralPrecondition:
		return "structural-precondition"
	case InvalidArgument:
		return "invalid-argument"
	default:
		return fmt.Sprintf("error-kind-%d", int(k))
	}
}

// Error is the distinguished failure type of the graph core. A negative
// answer (not isomorphic, no embedding) is never reported as an Error.
type Error struct {
	Kind ErrorKind
	Err  error
}

func Structuralf(format string, args ...interface{}) error {
	return &Error{Kind: StructuralPrecondition, Err: errors.Errorf(format, args...)}
}

func InvalidArgumentf(format string, args ...interface{}) error {
	return &Error{Kind: InvalidArgument, Err: errors.Errorf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("fastgraph %v: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func KindOf(err error) (ErrorKind, bool) {
	for err != nil {
		if fe, ok := err.(*Error); ok {
			return fe.Kind, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return 0, false
		}
		err = u.Unwrap()
	}
	return 0, false
}

func IsStructural(err error) bool {
	k, ok := KindOf(err)
	return ok && k == StructuralPrecondition
}

func IsInvalidArgument(err error) bool {
	k, ok := KindOf(err)
	return ok && k == InvalidArgument
}
