package service

import "errors"

var (
	// ErrDuplicateUser is returned by Register when the email is taken.
	ErrDuplicateUser = errors.New("user with this email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
