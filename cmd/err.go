package cmd

import (
	"fmt"
)

import (
	"github.com/timtadh/fastgraph/fastgraph"
)

// Error is a failure at the command boundary. Main prints it and exits
// with ExitCode.
type Error struct {
	Err      error
	ExitCode int
}

func Err(code int, err error) *Error {
	return &Error{Err: err, ExitCode: code}
}

func Errorf(code int, format string, args ...interface{}) *Error {
	return &Error{Err: fmt.Errorf(format, args...), ExitCode: code}
}

// GraphErr picks the exit code from the kind of a graph core error:
// 2 for invalid arguments, 3 for structural preconditions and 1 otherwise.
func GraphErr(err error) *Error {
	code := 1
	if kind, ok := fastgraph.KindOf(err); ok {
		switch kind {
		case fastgraph.InvalidArgument:
			code = 2
		case fastgraph.StructuralPrecondition:
			code = 3
		}
	}
	return Err(code, err)
}

func Usage(cmd Runnable, code int, formatAndArgs ...interface{}) *Error {
	var err error
	if len(formatAndArgs) > 0 {
		format := formatAndArgs[0].(string)
		args := formatAndArgs[1:]
		err = fmt.Errorf("error: %v\n\n%v\n", fmt.Sprintf(format, args...), cmd.ShortUsage())
	} else {
		err = fmt.Errorf("%v\n\n%v\n", cmd.ShortUsage(), cmd.Usage())
	}
	return &Error{Err: err, ExitCode: code}
}

func (c *Error) Error() string {
	return c.Err.Error()
}

func (c *Error) String() string {
	return c.Err.Error()
}
