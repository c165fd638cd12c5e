package validation

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when finalized settings fail
// structural validation.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// InvalidConfigurationError carries the human-readable reason a settings
// object could not be finalized.
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

// Is implements error matching for errors.Is() checks.
func (e *InvalidConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}
