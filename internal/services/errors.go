package services

import "errors"

var (
	// ErrNotFound signals an unknown id; handlers map it to 404.
	ErrNotFound = errors.New("not found")

	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserMissing is returned when a transaction references a user that
	// does not exist. The balance step is never silently skipped.
	ErrUserMissing = errors.New("transaction references unknown user")

	ErrInsufficientFunds = errors.New("insufficient balance")

	ErrInvalidAmount = errors.New("amount is not a valid decimal")
)
