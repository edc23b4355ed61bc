package users

import (
	"errors"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTooLong       = errors.New("email exceeds maximum length")
	ErrPasswordTooLong    = errors.New("password exceeds maximum length")
)
