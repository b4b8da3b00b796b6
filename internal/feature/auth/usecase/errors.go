// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when registering with an email or
	// username that is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned when an email/password pair does not
	// match a stored account, or when a password rotation supplies a wrong
	// current password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
