package domain

import "time"

// User models an account in the admin backend. PasswordHash and the reset
// token pair never leave the process through JSON.
//
// ResetToken and ResetTokenExpires are always set or cleared together: a
// reset request overwrites both, a completed reset clears both.
type User struct {
	ID                int64      `json:"id"`
	Username          string     `json:"username"`
	Email             string     `json:"email"`
	PasswordHash      string     `json:"-"`
	IsActive          bool       `json:"is_active"`
	IsAdmin           bool       `json:"is_admin"`
	ResetToken        *string    `json:"-"`
	ResetTokenExpires *time.Time `json:"-"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
