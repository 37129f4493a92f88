package model

import "github.com/passmeter/passmeter-go/internal/strength"

// StrengthRequest asks for the strength of a single password.
// A missing or null password is treated as the empty string.
type StrengthRequest struct {
	Password string `json:"password"`
}

// BatchStrengthRequest asks for the strength of several passwords at once.
type BatchStrengthRequest struct {
	Passwords []string `json:"passwords"`
}

// StrengthResponse is what a rendering layer needs to draw the indicator bar:
// Score doubles as the bar width in percent and Tier selects its color.
type StrengthResponse struct {
	Score    strength.Score    `json:"score"`
	Tier     strength.Tier     `json:"tier"`
	Criteria strength.Criteria `json:"criteria"`
}

// BatchStrengthResponse holds one result per requested password, in order.
type BatchStrengthResponse struct {
	Results []StrengthResponse `json:"results"`
}
