package service

import (
	"github.com/passmeter/passmeter-go/internal/model"
	"github.com/passmeter/passmeter-go/internal/strength"
	"github.com/passmeter/passmeter-go/internal/validate"
)

// SignupService checks a sign-up form before it is submitted.
type SignupService struct{}

// NewSignupService creates a new SignupService.
func NewSignupService() *SignupService {
	return &SignupService{}
}

// Validate runs the form checks and rates password1. A weak password does
// not make the form invalid.
func (s *SignupService) Validate(req model.SignupValidationRequest) model.SignupValidationResponse {
	errs := validate.SignupForm{
		Email:           req.Email,
		Password:        req.Password1,
		PasswordConfirm: req.Password2,
	}.Validate()

	return model.SignupValidationResponse{
		Valid:    errs.Valid(),
		Errors:   errs.Messages(),
		Strength: toStrengthResponse(strength.Analyze(req.Password1)),
	}
}
