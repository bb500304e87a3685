package domain

import "errors"

// Authentication / account errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserExists         = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrBadPassword        = errors.New("invalid password")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)

// Content errors.
var (
	ErrTitleTooShort = errors.New("title must be at least 5 characters long")
	ErrBodyTooShort  = errors.New("body must be at least 20 characters long")
	ErrPostNotFound  = errors.New("post not found")
	ErrForbidden     = errors.New("access forbidden")
)
