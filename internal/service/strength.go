package service

import (
	"errors"

	"github.com/passmeter/passmeter-go/internal/model"
	"github.com/passmeter/passmeter-go/internal/strength"
)

// MaxBatchSize bounds the number of passwords checked in one batch request.
const MaxBatchSize = 100

var (
	ErrBatchEmpty    = errors.New("passwords must not be empty")
	ErrBatchTooLarge = errors.New("too many passwords in batch request (max 100)")
)

// StrengthService exposes the strength evaluator to transport layers.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Check rates a single password.
func (s *StrengthService) Check(req model.StrengthRequest) model.StrengthResponse {
	return toStrengthResponse(strength.Analyze(req.Password))
}

// CheckBatch rates each password and returns the results in request order.
func (s *StrengthService) CheckBatch(req model.BatchStrengthRequest) (model.BatchStrengthResponse, error) {
	if len(req.Passwords) == 0 {
		return model.BatchStrengthResponse{}, ErrBatchEmpty
	}
	if len(req.Passwords) > MaxBatchSize {
		return model.BatchStrengthResponse{}, ErrBatchTooLarge
	}

	results := make([]model.StrengthResponse, len(req.Passwords))
	for i, p := range req.Passwords {
		results[i] = toStrengthResponse(strength.Analyze(p))
	}

	return model.BatchStrengthResponse{Results: results}, nil
}

func toStrengthResponse(r strength.Result) model.StrengthResponse {
	return model.StrengthResponse{
		Score:    r.Score,
		Tier:     r.Tier,
		Criteria: r.Criteria,
	}
}
