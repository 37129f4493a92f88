package strength

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		score Score
		want  Tier
	}{
		{score: 0, want: Weak},
		{score: 25, want: Weak},
		{score: 29, want: Weak},
		{score: 30, want: Medium},
		{score: 59, want: Medium},
		{score: 60, want: Strong},
		{score: 75, want: Strong},
		{score: 89, want: Strong},
		{score: 90, want: VeryStrong},
		{score: 100, want: VeryStrong},
		{score: -5, want: Weak},
		{score: 250, want: VeryStrong},
	}

	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestClassifyNonDecreasing(t *testing.T) {
	prev := Classify(MinScore)
	for s := MinScore + 1; s <= MaxScore; s++ {
		cur := Classify(s)
		if cur < prev {
			t.Fatalf("Classify(%d) = %v is weaker than Classify(%d) = %v", s, cur, s-1, prev)
		}
		prev = cur
	}
}

func TestTierString(t *testing.T) {
	want := map[Tier]string{
		Weak:       "weak",
		Medium:     "medium",
		Strong:     "strong",
		VeryStrong: "very-strong",
		Tier(9):    "Tier(9)",
	}
	for tier, s := range want {
		if got := tier.String(); got != s {
			t.Errorf("Tier(%d).String() = %q, want %q", int(tier), got, s)
		}
	}
}

func TestTierJSON(t *testing.T) {
	for _, tier := range Tiers() {
		b, err := json.Marshal(tier)
		if err != nil {
			t.Fatalf("json.Marshal(%v) unexpected error: %v", tier, err)
		}

		var decoded Tier
		if err := json.Unmarshal(b, &decoded); err != nil {
			t.Fatalf("json.Unmarshal(%s) unexpected error: %v", b, err)
		}
		if decoded != tier {
			t.Errorf("round trip of %v gave %v", tier, decoded)
		}
	}

	b, err := json.Marshal(Result{Score: 100, Tier: VeryStrong})
	if err != nil {
		t.Fatalf("json.Marshal(Result) unexpected error: %v", err)
	}
	want := `{"score":100,"tier":"very-strong","criteria":{"min_length":false,"long_length":false,"mixed_case":false,"digit":false,"symbol":false}}`
	if string(b) != want {
		t.Errorf("json.Marshal(Result) = %s, want %s", b, want)
	}
}

func TestTierMarshalOutOfRange(t *testing.T) {
	if _, err := Tier(-1).MarshalText(); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("MarshalText() error = %v, want ErrUnknownTier", err)
	}
}

func TestParseTier(t *testing.T) {
	tier, err := ParseTier("strong")
	if err != nil {
		t.Fatalf("ParseTier() unexpected error: %v", err)
	}
	if tier != Strong {
		t.Errorf("ParseTier() = %v, want %v", tier, Strong)
	}

	if _, err := ParseTier("VeryStrong"); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("ParseTier() error = %v, want ErrUnknownTier", err)
	}
}
