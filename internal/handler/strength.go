package handler

import (
	"errors"
	"net/http"

	"github.com/passmeter/passmeter-go/internal/model"
	"github.com/passmeter/passmeter-go/internal/service"
)

// StrengthHandler handles HTTP requests for password strength checks.
type StrengthHandler struct {
	service *service.StrengthService
}

// NewStrengthHandler creates a new StrengthHandler.
func NewStrengthHandler(svc *service.StrengthService) *StrengthHandler {
	return &StrengthHandler{service: svc}
}

// HandleCheck handles POST /api/v1/strength requests.
func (h *StrengthHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeDecodeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Check(req))
}

// HandleCheckBatch handles POST /api/v1/strength/batch requests.
func (h *StrengthHandler) HandleCheckBatch(w http.ResponseWriter, r *http.Request) {
	var req model.BatchStrengthRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.CheckBatch(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBatchEmpty), errors.Is(err, service.ErrBatchTooLarge):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
