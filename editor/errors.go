package editor

import "fmt"

// FatalError is a failure the session cannot continue from. Run clears the
// screen and restores the terminal before returning it.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

func fatal(op string, err error) *FatalError {
	return &FatalError{Op: op, Err: err}
}
