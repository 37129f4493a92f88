// Package strength scores candidate passwords and maps the score to a
// strength tier. Everything here is pure: no I/O, no shared state.
package strength

import "unicode/utf16"

// Score is a password strength metric in [MinScore, MaxScore].
type Score int

const (
	MinScore Score = 0
	MaxScore Score = 100
)

// Points earned by each criterion.
const (
	minLengthPoints  Score = 25
	longLengthPoints Score = 25
	mixedCasePoints  Score = 25
	digitPoints      Score = 15
	symbolPoints     Score = 10
)

// Length thresholds, counted in UTF-16 code units.
const (
	MinLength  = 8
	LongLength = 12
)

// Criteria records which scoring conditions a password satisfies.
type Criteria struct {
	MinLength  bool `json:"min_length"`
	LongLength bool `json:"long_length"`
	MixedCase  bool `json:"mixed_case"`
	Digit      bool `json:"digit"`
	Symbol     bool `json:"symbol"`
}

// Result is the outcome of a single evaluation.
type Result struct {
	Score    Score    `json:"score"`
	Tier     Tier     `json:"tier"`
	Criteria Criteria `json:"criteria"`
}

// Evaluate returns the strength score of password. It is defined for every
// string; the empty string scores 0.
func Evaluate(password string) Score {
	return scoreOf(inspect(password))
}

// Analyze evaluates and classifies password in one pass.
func Analyze(password string) Result {
	c := inspect(password)
	score := scoreOf(c)
	return Result{
		Score:    score,
		Tier:     Classify(score),
		Criteria: c,
	}
}

func inspect(password string) Criteria {
	var (
		length                           int
		lower, upper, digit, otherSymbol bool
	)

	for _, r := range password {
		length += utf16.RuneLen(r)
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			otherSymbol = true
		}
	}

	return Criteria{
		MinLength:  length >= MinLength,
		LongLength: length >= LongLength,
		MixedCase:  lower && upper,
		Digit:      digit,
		Symbol:     otherSymbol,
	}
}

func scoreOf(c Criteria) Score {
	var s Score
	if c.MinLength {
		s += minLengthPoints
	}
	if c.LongLength {
		s += longLengthPoints
	}
	if c.MixedCase {
		s += mixedCasePoints
	}
	if c.Digit {
		s += digitPoints
	}
	if c.Symbol {
		s += symbolPoints
	}
	return clamp(s)
}

func clamp(s Score) Score {
	return min(max(s, MinScore), MaxScore)
}
