package auth

import (
	"fmt"
	"strings"
)

// specialChars is the fixed set a password must draw at least one
// character from when RequireSpecial is set.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// PasswordPolicy validates candidate passwords against complexity rules.
// Every rule is evaluated independently so the caller receives the full
// list of violations, not just the first one.
//
// The policy applies to new and replacement passwords (register, reset,
// change), never to login, which only verifies against the stored hash.
type PasswordPolicy struct {
	MinLength        int
	MaxLength        int // 0 disables the upper bound
	RequireUppercase bool
	RequireLowercase bool
	RequireDigit     bool
	RequireSpecial   bool
	MinUniqueChars   int
}

// DefaultPasswordPolicy returns the stock rules: 8..64 characters, at
// least one uppercase, lowercase, digit and special character, and at
// least 4 distinct code points.
func DefaultPasswordPolicy() *PasswordPolicy {
	return &PasswordPolicy{
		MinLength:        8,
		MaxLength:        64,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigit:     true,
		RequireSpecial:   true,
		MinUniqueChars:   4,
	}
}

// Validate returns ok=true iff the violations list is empty. Length and
// uniqueness are counted in code points, case-sensitively.
func (p *PasswordPolicy) Validate(password string) (bool, []string) {
	var violations []string

	runes := []rune(password)
	if len(runes) < p.MinLength {
		violations = append(violations, fmt.Sprintf("password must be at least %d characters long", p.MinLength))
	}
	if p.MaxLength > 0 && len(runes) > p.MaxLength {
		violations = append(violations, fmt.Sprintf("password must be at most %d characters long", p.MaxLength))
	}
	if p.RequireUppercase && !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		violations = append(violations, "password must contain at least one uppercase letter")
	}
	if p.RequireLowercase && !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		violations = append(violations, "password must contain at least one lowercase letter")
	}
	if p.RequireDigit && !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		violations = append(violations, "password must contain at least one digit")
	}
	if p.RequireSpecial && !strings.ContainsAny(password, specialChars) {
		violations = append(violations, "password must contain at least one special character")
	}

	unique := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		unique[r] = struct{}{}
	}
	if len(unique) < p.MinUniqueChars {
		violations = append(violations, fmt.Sprintf("password must contain at least %d distinct characters", p.MinUniqueChars))
	}

	return len(violations) == 0, violations
}
