package password

import (
	"fmt"
	"strings"
	"unicode"
)

// Policy validates a candidate password against account context.
// A nil/empty result means the password is acceptable.
type Policy interface {
	Validate(password, username, email string) []string
}

// commonPasswords is a short deny-list of passwords seen in every leak.
var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "passw0rd": {}, "12345678": {},
	"123456789": {}, "1234567890": {}, "qwerty123": {}, "qwertyuiop": {},
	"iloveyou": {}, "sunshine": {}, "princess": {}, "football": {},
	"baseball": {}, "superman": {}, "trustno1": {}, "welcome1": {},
	"admin123": {}, "letmein1": {}, "dragon123": {}, "monkey123": {},
}

// DefaultPolicy mirrors the usual framework validator set: minimum
// length, not entirely numeric, not a known common password, not too
// similar to the username or email.
type DefaultPolicy struct {
	MinLength int
}

// NewDefaultPolicy returns a DefaultPolicy with an 8-character minimum.
func NewDefaultPolicy() *DefaultPolicy {
	return &DefaultPolicy{MinLength: 8}
}

func (p *DefaultPolicy) Validate(password, username, email string) []string {
	var reasons []string

	if len(password) < p.MinLength {
		reasons = append(reasons, fmt.Sprintf(
			"This password is too short. It must contain at least %d characters.", p.MinLength))
	}
	if entirelyNumeric(password) {
		reasons = append(reasons, "This password is entirely numeric.")
	}
	if _, ok := commonPasswords[strings.ToLower(password)]; ok {
		reasons = append(reasons, "This password is too common.")
	}
	if tooSimilar(password, username) {
		reasons = append(reasons, "The password is too similar to the username.")
	}
	local, _, _ := strings.Cut(email, "@")
	if tooSimilar(password, local) {
		reasons = append(reasons, "The password is too similar to the email address.")
	}
	return reasons
}

func entirelyNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// tooSimilar reports whether one value contains the other,
// case-insensitively. Short attributes are ignored so that e.g. a
// two-letter username does not poison every password containing it.
func tooSimilar(password, attribute string) bool {
	if len(attribute) < 4 || password == "" {
		return false
	}
	p := strings.ToLower(password)
	a := strings.ToLower(attribute)
	return strings.Contains(p, a) || strings.Contains(a, p)
}
