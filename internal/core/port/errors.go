package port

import (
	"errors"
	"fmt"
)

// ErrNoPreview is returned when the platform accepts a preview request but
// renders nothing.
var ErrNoPreview = errors.New("no preview generated")

// ValidationError reports missing or malformed caller input, detected
// before any remote call is made. The HTTP layer maps it to 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// StepError attributes a launch failure to the pipeline step that was
// executing when it occurred. Upstream objects created by earlier steps
// are left in place.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string { return fmt.Sprintf("%s: %s", e.Step, e.Err) }

func (e *StepError) Unwrap() error { return e.Err }
