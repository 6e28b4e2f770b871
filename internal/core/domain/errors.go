package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared across services, repositories, and the HTTP layer.
// All of them are recoverable and map to a deterministic status code in the
// API error handler.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountDisabled      = errors.New("account disabled")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrEmailTaken           = errors.New("email already exists")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token expired")
	ErrWrongCurrentPassword = errors.New("current password is incorrect")

	ErrUserNotFound     = errors.New("user not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrTagNotFound      = errors.New("tag not found")
	ErrTagExists        = errors.New("tag already exists")
	ErrCommentNotFound  = errors.New("comment not found")
)

// WeakPasswordError carries the full, ordered list of complexity rules a
// candidate password violated. Every rule is evaluated independently, so
// the list is complete rather than first-failure-only.
type WeakPasswordError struct {
	Violations []string
}

func (e *WeakPasswordError) Error() string {
	return "password does not meet security requirements: " + strings.Join(e.Violations, ", ")
}
