// Package validate holds the field checks applied to the sign-up form.
package validate

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrRequired         = errors.New("this field is required")
	ErrInvalidEmail     = errors.New("enter a valid email address")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Form field names, as rendered by the sign-up page.
const (
	FieldEmail           = "email"
	FieldPassword        = "password1"
	FieldPasswordConfirm = "password2"
)

// formSpace is the whitespace set browsers use for \s and String.trim:
// ASCII whitespace plus \v, the Unicode space separators (Zs, Zl, Zp) and
// the byte order mark. RE2's \s is ASCII-only, so the class is spelled out.
const formSpace = `\t\n\x0B\f\r \p{Z}\x{FEFF}`

var emailPattern = regexp.MustCompile(`^[^` + formSpace + `@]+@[^` + formSpace + `@]+\.[^` + formSpace + `@]+$`)

func isFormSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\uFEFF':
		return true
	}
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}

func trimFormSpace(value string) string {
	return strings.TrimFunc(value, isFormSpace)
}

// Required reports ErrRequired when value is blank.
func Required(value string) error {
	if trimFormSpace(value) == "" {
		return ErrRequired
	}
	return nil
}

// Email checks value against a loose local@domain.tld pattern.
func Email(value string) error {
	v := trimFormSpace(value)
	if v == "" {
		return ErrRequired
	}
	if !emailPattern.MatchString(v) {
		return ErrInvalidEmail
	}
	return nil
}

// PasswordsMatch compares the two values exactly; whitespace is significant.
func PasswordsMatch(password, confirmation string) error {
	if password != confirmation {
		return ErrPasswordMismatch
	}
	return nil
}

// Errors maps a form field name to the first check it failed.
type Errors map[string]error

// Valid reports whether no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Messages returns the errors as field name to message.
func (e Errors) Messages() map[string]string {
	out := make(map[string]string, len(e))
	for field, err := range e {
		out[field] = err.Error()
	}
	return out
}

// SignupForm is a submitted sign-up form.
type SignupForm struct {
	Email           string
	Password        string
	PasswordConfirm string
}

// Validate runs every field check and collects the failures.
func (f SignupForm) Validate() Errors {
	errs := Errors{}

	if err := Email(f.Email); err != nil {
		errs[FieldEmail] = err
	}
	if err := Required(f.Password); err != nil {
		errs[FieldPassword] = err
	}
	if err := Required(f.PasswordConfirm); err != nil {
		errs[FieldPasswordConfirm] = err
	} else if err := PasswordsMatch(f.Password, f.PasswordConfirm); err != nil {
		errs[FieldPasswordConfirm] = err
	}

	return errs
}
