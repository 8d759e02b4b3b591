package render

import "fmt"

// UnsupportedFeatureError indicates a feature not supported by the dialect.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// NewUnsupportedFeatureError creates a new unsupported feature error.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// ConfigError reports a malformed function mapping or hook registration.
// It is returned at registration time, never while rendering.
type ConfigError struct {
	Function string
	Reason   string
}

func (e ConfigError) Error() string {
	if e.Function == "" {
		return fmt.Sprintf("invalid function mapping: %s", e.Reason)
	}
	return fmt.Sprintf("invalid function mapping for %s: %s", e.Function, e.Reason)
}

// NewConfigError creates a new configuration error.
func NewConfigError(function, reason string) error {
	return ConfigError{Function: function, Reason: reason}
}

// ArgumentError reports a call whose arguments cannot be rendered by the
// registered rule, such as a method call without a receiver.
type ArgumentError struct {
	Function string
	Dialect  string
	Reason   string
}

func (e ArgumentError) Error() string {
	return fmt.Sprintf("%s: cannot render %s: %s", e.Dialect, e.Function, e.Reason)
}

// NewArgumentError creates a new argument error.
func NewArgumentError(dialect, function, reason string) error {
	return ArgumentError{Function: function, Dialect: dialect, Reason: reason}
}

// BindError reports a literal value that cannot be sent to the driver.
type BindError struct {
	Dialect string
	Reason  string
	Value   any
}

func (e BindError) Error() string {
	return fmt.Sprintf("%s: cannot bind value of type %T: %s", e.Dialect, e.Value, e.Reason)
}
