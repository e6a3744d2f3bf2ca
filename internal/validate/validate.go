// Package validate holds the account precondition rules: email syntax,
// password strength, and date-of-birth range and calendar validity.
package validate

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrWeakPassword = errors.New("password does not meet the strength policy")
	ErrInvalidDate  = errors.New("invalid date of birth")
)

// Profile carries the candidate account fields the password policy
// cross-checks against. It is passed explicitly because validation runs
// before any account exists.
type Profile struct {
	FirstName   string
	LastName    string
	Email       string
	DateOfBirth string
}

const (
	minPasswordLength = 8
	passwordSymbols   = "@$!%*?&"
)

// Accepted years are 1900-1999 plus 2000, 2001, 2010 and 2011. The range is
// kept as enforced by the legacy service even though its docs describe a
// relative "10-100 years old" rule.
var dateOfBirthRegex = regexp.MustCompile(`^(19\d\d|20[01][01])-(0[1-9]|1[012])-(0[1-9]|[12]\d|3[01])$`)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Email reports whether s is a syntactically valid email address.
func Email(s string) error {
	if err := validate.Var(s, "required,email"); err != nil {
		return ErrInvalidEmail
	}

	return nil
}

// Password checks the password strength policy: at least 8 characters, at
// least one uppercase letter, one lowercase letter, one digit and one symbol
// from the allowed set, no characters outside that set, and no occurrence of
// the profile's name, email or date of birth.
func Password(s string, profile Profile) error {
	if len(s) < minPasswordLength {
		return ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		default:
			return ErrWeakPassword
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return ErrWeakPassword
	}

	lowered := strings.ToLower(s)
	for _, field := range []string{
		profile.FirstName,
		profile.LastName,
		profile.Email,
		profile.DateOfBirth,
	} {
		if field == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(field)) {
			return ErrWeakPassword
		}
	}

	return nil
}

// DateOfBirth checks that s is a YYYY-MM-DD date inside the accepted year
// range and names a day that exists in its month.
func DateOfBirth(s string) error {
	if !dateOfBirthRegex.MatchString(s) {
		return ErrInvalidDate
	}

	year := int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
	month := int(s[5]-'0')*10 + int(s[6]-'0')
	day := int(s[8]-'0')*10 + int(s[9]-'0')

	switch month {
	case 2:
		// The legacy leap rule: every fourth year.
		leap := year%4 == 0
		if day > 29 || (day == 29 && !leap) {
			return ErrInvalidDate
		}
	case 4, 6, 9, 11:
		if day == 31 {
			return ErrInvalidDate
		}
	}

	return nil
}
