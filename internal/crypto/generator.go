package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	MinLength     = 8
	MaxLength     = 128
	DefaultLength = 16
)

var (
	ErrLengthTooShort     = errors.New("password length must be at least 8")
	ErrLengthTooLong      = errors.New("password length must be at most 128")
	ErrNoCharacterTypes   = errors.New("at least one character type must be selected")
	ErrLengthInsufficient = errors.New("password length must be at least equal to the number of selected character types")
)

// GeneratorOptions configures a suggested password.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns 16 characters drawn from every class. Passwords
// generated with these options always rate VeryStrong.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// charsets returns the selected character classes in a fixed order.
func (o GeneratorOptions) charsets() []string {
	var sets []string
	for _, c := range []struct {
		on      bool
		charset string
	}{
		{o.Uppercase, uppercaseChars},
		{o.Lowercase, lowercaseChars},
		{o.Numbers, numberChars},
		{o.Symbols, symbolChars},
	} {
		if c.on {
			sets = append(sets, c.charset)
		}
	}
	return sets
}

// Validate checks the options without generating anything.
func (o GeneratorOptions) Validate() error {
	switch {
	case o.Length < MinLength:
		return ErrLengthTooShort
	case o.Length > MaxLength:
		return ErrLengthTooLong
	}

	n := len(o.charsets())
	if n == 0 {
		return ErrNoCharacterTypes
	}
	if o.Length < n {
		return ErrLengthInsufficient
	}
	return nil
}

// Generate returns a random password containing at least one character of
// every selected class.
func Generate(opts GeneratorOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	sets := opts.charsets()
	var pool string
	for _, s := range sets {
		pool += s
	}

	result := make([]byte, opts.Length)
	for i := range result {
		charset := pool
		if i < len(sets) {
			charset = sets[i]
		}
		ch, err := randChar(charset)
		if err != nil {
			return "", fmt.Errorf("reading random source: %w", err)
		}
		result[i] = ch
	}

	// The first len(sets) positions are predictable by class; shuffle them away.
	if err := secureShuffle(result); err != nil {
		return "", fmt.Errorf("shuffling password: %w", err)
	}

	return string(result), nil
}

func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// secureShuffle is a Fisher-Yates shuffle driven by crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
