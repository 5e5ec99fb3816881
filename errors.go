package powerbill

import "fmt"

// ValidationError reports malformed caller input, like a blank property name.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "invalid input: " + e.Reason }

// NotFoundError reports that a referenced id does not resolve to a live entity.
type NotFoundError struct {
	Kind string // "property" or "meter"
	ID   string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %q not found", e.Kind, e.ID) }

// DecodeError reports a malformed persisted or imported document.
type DecodeError struct {
	Reason string
	Cause  error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot decode document: %s: %v", e.Reason, e.Cause)
	}
	return "cannot decode document: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// ImportError reports a failed restore. The book is left untouched.
type ImportError struct {
	Cause error
}

func (e *ImportError) Error() string { return fmt.Sprintf("cannot import backup: %v", e.Cause) }
func (e *ImportError) Unwrap() error { return e.Cause }

// FetchError reports a failed bill snapshot fetch.
type FetchError struct {
	Number string // the service number the fetch was for
	Cause  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("cannot fetch bill for %q: %v", e.Number, e.Cause)
}

func (e *FetchError) Unwrap() error { return e.Cause }
