package atom

import "fmt"

// ValidationError reports a construct whose fields violate an Atom invariant.
type ValidationError struct {
	Construct string
	Field     string
	Reason    string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid %s: %s", e.Construct, e.Reason)
	}
	return fmt.Sprintf("invalid %s %s: %s", e.Construct, e.Field, e.Reason)
}

func invalid(construct, field, format string, args ...any) *ValidationError {
	return &ValidationError{Construct: construct, Field: field, Reason: fmt.Sprintf(format, args...)}
}

// FormatError reports a timestamp that does not match its layout.
type FormatError struct {
	Value  string
	Layout string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("timestamp %q does not match layout %q: %v", e.Value, e.Layout, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
