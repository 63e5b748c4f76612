package core

import "fmt"

// ConfigurationError reports a tuning value or constructor argument the
// simulation cannot run with.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}
