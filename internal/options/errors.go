package options

import "errors"

// UsageError reports a malformed or out-of-range flag value, or an
// unrecognized flag. It is fatal: the translator refuses to start rather
// than run half-configured, and no partially parsed state is observable
// afterwards.
//
// The wrapped error names the offending flag and the expected form.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return "could not parse command line: " + e.Err.Error()
}

func (e *UsageError) Unwrap() error { return e.Err }

// IsUsageError reports whether err is a UsageError. Uses errors.As to
// handle wrapped errors.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
