package domain

import "errors"

var (
	ErrActivityNotFound  = errors.New("activity not found")
	ErrAlreadyRegistered = errors.New("already signed up")
	ErrActivityFull      = errors.New("activity is full")
	ErrNotRegistered     = errors.New("not signed up")
	ErrEmailRequired     = errors.New("email required")
)
