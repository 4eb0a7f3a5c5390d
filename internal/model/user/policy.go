package user

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLength = 5
	MaxUsernameLength = 64
)

var (
	ErrUsernameEmpty    = errors.New("username is empty")
	ErrUsernameTooLong  = errors.New("username is too long")
	ErrPasswordTooShort = errors.New("password must be at least 5 characters long")
	ErrPasswordNoDigit  = errors.New("password must contain a digit")
	ErrPasswordNoLower  = errors.New("password must contain a lowercase letter")
	ErrPasswordNoUpper  = errors.New("password must contain an uppercase letter")
)

func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameEmpty
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	return nil
}

// ValidatePassword reports every rule of the password policy the password breaks.
func ValidatePassword(password string) error {
	var tooShort, noDigit, noLower, noUpper error
	if utf8.RuneCountInString(password) < MinPasswordLength {
		tooShort = ErrPasswordTooShort
	}

	var hasDigit, hasLower, hasUpper bool
	for _, c := range password {
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		}
	}
	if !hasDigit {
		noDigit = ErrPasswordNoDigit
	}
	if !hasLower {
		noLower = ErrPasswordNoLower
	}
	if !hasUpper {
		noUpper = ErrPasswordNoUpper
	}
	return errors.Join(tooShort, noDigit, noLower, noUpper)
}
