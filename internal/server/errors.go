package server

import (
	"fmt"
	"net/http"

	"github.com/jordan/resume-studio/internal/gateway"
	"github.com/jordan/resume-studio/internal/session"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Configuration, upstream, and parse failures all map to 500; routes with a
// soft-failure policy convert those errors before they reach this switch.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *gateway.InvalidArgumentError:
		return http.StatusBadRequest
	case *session.NoCreditsError:
		return http.StatusPaymentRequired
	case *session.UserNotFoundError:
		return http.StatusNotFound
	case *session.DuplicateUserError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
