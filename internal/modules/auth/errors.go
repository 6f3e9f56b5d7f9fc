package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginDisabled      = errors.New("staff login is not configured")
)
