package service

import "errors"

var (
	ErrStoreUnavailable   = errors.New("store unavailable")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotLoggedIn        = errors.New("not logged in")
)
