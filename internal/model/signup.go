package model

// SignupValidationRequest mirrors the fields of the sign-up form.
type SignupValidationRequest struct {
	Email     string `json:"email"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
}

// SignupValidationResponse reports per-field errors keyed by form field name
// plus the advisory strength of password1.
type SignupValidationResponse struct {
	Valid    bool              `json:"valid"`
	Errors   map[string]string `json:"errors"`
	Strength StrengthResponse  `json:"strength"`
}
