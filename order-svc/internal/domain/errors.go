package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidOrder       = errors.New("order needs a user, a restaurant and at least one item")
	ErrInvalidUser        = errors.New("username, phone and password are required")
	ErrDuplicatePhone     = errors.New("phone number already registered")
	ErrInvalidCredentials = errors.New("invalid phone or password")
)
