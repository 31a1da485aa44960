package intake

import "fmt"

// InternalError wraps a failure that is not the client's fault as far as
// the caller can tell: a malformed field type or a builder fault.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string { return e.Err.Error() }

func (e *InternalError) Unwrap() error { return e.Err }

func internalErrorf(format string, args ...interface{}) *InternalError {
	return &InternalError{Err: fmt.Errorf(format, args...)}
}
