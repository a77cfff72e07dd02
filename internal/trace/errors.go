package trace

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates a step addressing a position outside the sequence.
	ErrIndexOutOfRange = errors.New("trace: step index out of range")

	// ErrUnknownKind indicates a step with an unrecognized kind.
	ErrUnknownKind = errors.New("trace: unknown step kind")
)

// StepError wraps an error with the offending step.
type StepError struct {
	Index   int
	Step    Step
	Len     int
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d %s (len %d): %v", e.Index, e.Step, e.Len, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
