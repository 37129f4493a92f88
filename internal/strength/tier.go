package strength

import (
	"errors"
	"fmt"
)

// ErrUnknownTier is returned when decoding a tier name that does not exist.
var ErrUnknownTier = errors.New("unknown strength tier")

// Tier is a discrete strength classification of a Score.
type Tier int

const (
	Weak Tier = iota
	Medium
	Strong
	VeryStrong
)

// Lower bounds of each tier; every tier is half-open except VeryStrong,
// which includes MaxScore.
const (
	mediumFrom     Score = 30
	strongFrom     Score = 60
	veryStrongFrom Score = 90
)

var tierNames = [...]string{
	Weak:       "weak",
	Medium:     "medium",
	Strong:     "strong",
	VeryStrong: "very-strong",
}

// Classify maps score to its tier. Scores outside [MinScore, MaxScore] are
// clamped first.
func Classify(score Score) Tier {
	switch s := clamp(score); {
	case s < mediumFrom:
		return Weak
	case s < strongFrom:
		return Medium
	case s < veryStrongFrom:
		return Strong
	default:
		return VeryStrong
	}
}

// Tiers returns every tier from weakest to strongest.
func Tiers() []Tier {
	return []Tier{Weak, Medium, Strong, VeryStrong}
}

func (t Tier) String() string {
	if t < Weak || t > VeryStrong {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// MarshalText encodes the tier as its name, e.g. "very-strong".
func (t Tier) MarshalText() ([]byte, error) {
	if t < Weak || t > VeryStrong {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, int(t))
	}
	return []byte(tierNames[t]), nil
}

// UnmarshalText decodes a tier name produced by MarshalText.
func (t *Tier) UnmarshalText(text []byte) error {
	tier, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = tier
	return nil
}

// ParseTier returns the tier with the given name.
func ParseTier(name string) (Tier, error) {
	for i, n := range tierNames {
		if n == name {
			return Tier(i), nil
		}
	}
	return Weak, fmt.Errorf("%w: %q", ErrUnknownTier, name)
}
