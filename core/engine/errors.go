package engine

import "fmt"

// InvalidParameterError is returned before any scanning when a run's inputs
// are unusable.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}
