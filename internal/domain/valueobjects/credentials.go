package valueobjects

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

const (
	MinPasswordLength = 6
	MaxUsernameLength = 30
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._]+$`)
	// Celular brasileiro: (11) 99999-9999
	phonePattern = regexp.MustCompile(`^\(\d{2}\) ?9\d{4}-\d{4}$`)
)

// IsValidUsername aceita apenas letras, números, ponto e underline
func IsValidUsername(username string) bool {
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return false
	}
	return usernamePattern.MatchString(username)
}

// IsValidPhone valida o formato de celular brasileiro
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsStrongPassword exige no mínimo 6 caracteres, uma letra maiúscula,
// uma minúscula, um número e um caractere especial.
func IsStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r) && !unicode.IsSpace(r):
			special = true
		}
	}

	return upper && lower && digit && special
}
