package parsing

import "fmt"

// UpstreamError represents a failure of the provider call itself.
type UpstreamError struct {
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider call failed: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// ParseError represents provider output that is not the expected shape
// after normalization.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
