// Package validation provides input validation for account fields.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"unicode"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// reservedUsernames collide with API routes or impersonate system roles.
var reservedUsernames = map[string]struct{}{
	"me":       {},
	"admin":    {},
	"api":      {},
	"auth":     {},
	"feed":     {},
	"posts":    {},
	"comments": {},
	"friends":  {},
	"debates":  {},
	"users":    {},
	"metrics":  {},
	"health":   {},
	"login":    {},
	"signup":   {},
	"system":   {},
}

// ValidateUsername checks length, character set, and reserved names.
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}
	if len(username) > 30 {
		return fmt.Errorf("username must not exceed 30 characters")
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, underscores, and hyphens")
	}
	if username[0] == '_' || username[0] == '-' ||
		username[len(username)-1] == '_' || username[len(username)-1] == '-' {
		return fmt.Errorf("username cannot start or end with underscore or hyphen")
	}
	if _, reserved := reservedUsernames[toLowerASCII(username)]; reserved {
		return fmt.Errorf("username %q is reserved", username)
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks basic email format.
func ValidateEmail(email string) error {
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePassword requires 8 to 128 characters with at least one letter
// and one digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}

	hasLetter, hasDigit := false, false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter {
		return fmt.Errorf("password must contain at least one letter")
	}
	if !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}
	return nil
}

// ValidateDisplayName checks length and rejects control characters. An empty
// display name is allowed; clients fall back to the username.
func ValidateDisplayName(name string) error {
	if len(name) > 80 {
		return fmt.Errorf("display name must not exceed 80 characters")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("display name cannot contain control characters")
		}
	}
	return nil
}

// ValidateAvatarURL checks that a non-empty avatar URL is an absolute
// http(s) URL of reasonable length.
func ValidateAvatarURL(rawURL string) error {
	if rawURL == "" {
		return nil
	}
	if len(rawURL) > 2048 {
		return fmt.Errorf("avatar URL must not exceed 2048 characters")
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("avatar URL must be an absolute http or https URL")
	}
	return nil
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
