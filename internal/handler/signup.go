package handler

import (
	"net/http"

	"github.com/passmeter/passmeter-go/internal/model"
	"github.com/passmeter/passmeter-go/internal/service"
)

// SignupHandler handles sign-up form validation requests.
type SignupHandler struct {
	service *service.SignupService
}

// NewSignupHandler creates a new SignupHandler.
func NewSignupHandler(svc *service.SignupService) *SignupHandler {
	return &SignupHandler{service: svc}
}

// HandleValidate handles POST /api/v1/signup/validate requests. An invalid
// form is still a 200; the verdict is in the body.
func (h *SignupHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var req model.SignupValidationRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeDecodeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Validate(req))
}
