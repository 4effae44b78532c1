package session

import "fmt"

// DuplicateUserError indicates a registration attempt for an email that
// already has an account.
type DuplicateUserError struct {
	Email string
}

func (e *DuplicateUserError) Error() string {
	return fmt.Sprintf("user already exists: %s", e.Email)
}

// UserNotFoundError indicates no account exists for the email.
type UserNotFoundError struct {
	Email string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user not found: %s", e.Email)
}

// NoCreditsError indicates the account balance is zero and the requested
// debit was refused.
type NoCreditsError struct {
	Email string
}

func (e *NoCreditsError) Error() string {
	return fmt.Sprintf("no credits remaining for %s", e.Email)
}
