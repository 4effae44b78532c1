package gateway

import "fmt"

// ConfigurationError indicates the provider credential is absent, so no
// AI-backed operation can run.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("provider not configured: %s", e.Message)
	}
	return "provider not configured"
}

// InvalidArgumentError indicates a caller-supplied argument is outside the
// accepted domain.
type InvalidArgumentError struct {
	Field   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Message)
}
