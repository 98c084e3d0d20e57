package users

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PasswordPolicy decides whether a password is acceptable.
type PasswordPolicy interface {
	Valid(password string) bool
	Name() string
}

// WeakPolicy accepts anything of at least 4 characters.
type WeakPolicy struct{}

func (WeakPolicy) Valid(p string) bool { return utf8.RuneCountInString(p) >= 4 }
func (WeakPolicy) Name() string        { return "Weak (>=4)" }

// MediumPolicy requires 6 characters with at least one letter and one digit.
type MediumPolicy struct{}

func (MediumPolicy) Valid(p string) bool {
	if utf8.RuneCountInString(p) < 6 {
		return false
	}
	return strings.IndexFunc(p, unicode.IsDigit) >= 0 && strings.IndexFunc(p, unicode.IsLetter) >= 0
}

func (MediumPolicy) Name() string { return "Medium (>=6, letters and a digit)" }

// StrongPolicy requires 8 characters mixing lower case, upper case, digits
// and at least one symbol.
type StrongPolicy struct{}

func (StrongPolicy) Valid(p string) bool {
	if utf8.RuneCountInString(p) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range p {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r) && !unicode.IsNumber(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

func (StrongPolicy) Name() string { return "Strong (>=8, lower/upper, digit, symbol)" }

// PolicyNames lists the names accepted by PolicyByName.
var PolicyNames = []string{"weak", "medium", "strong"}

// PolicyByName returns the policy registered under name (case-insensitive).
func PolicyByName(name string) (PasswordPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "weak":
		return WeakPolicy{}, nil
	case "medium":
		return MediumPolicy{}, nil
	case "strong":
		return StrongPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown password policy %q (want one of %s)", name, strings.Join(PolicyNames, ", "))
	}
}
