package ship

import "errors"

var (
	ErrMissingPart   = errors.New("required part is missing")
	ErrInvalidTuning = errors.New("tuning value out of range")
)

// ConfigError reports a malformed ship at construction time. Ships are
// validated up front so nothing can fail mid-tick.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return "ship config: " + e.Field + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error { return e.Err }

func missing(field string) error {
	return &ConfigError{Field: field, Err: ErrMissingPart}
}
