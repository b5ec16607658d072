package httpecho

import "fmt"

// ClientInputError is returned when the request itself cannot be understood,
// e.g. a malformed query string or cookie header. It is answered with 400 and
// the message as a plain text body.
type ClientInputError struct {
	Err error
}

func (e ClientInputError) Error() string {
	return e.Err.Error()
}

func (e ClientInputError) Unwrap() error {
	return e.Err
}

func clientInputErrorf(format string, a ...interface{}) error {
	return ClientInputError{Err: fmt.Errorf(format, a...)}
}

// MissingSignalError is returned when something a handler cannot do without
// is absent from the request, like the peer address.
// It is a handler fault and is answered with 500.
type MissingSignalError struct {
	Signal string
}

func (e MissingSignalError) Error() string {
	return fmt.Sprintf("missing %s", e.Signal)
}
