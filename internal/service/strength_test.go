package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passmeter/passmeter-go/internal/model"
	"github.com/passmeter/passmeter-go/internal/strength"
)

func TestCheck(t *testing.T) {
	svc := NewStrengthService()

	resp := svc.Check(model.StrengthRequest{Password: "aB3!aB3!"})

	assert.Equal(t, strength.Score(75), resp.Score)
	assert.Equal(t, strength.Strong, resp.Tier)
	assert.True(t, resp.Criteria.MinLength)
	assert.False(t, resp.Criteria.LongLength)
}

func TestCheck_EmptyPassword(t *testing.T) {
	svc := NewStrengthService()

	resp := svc.Check(model.StrengthRequest{})

	assert.Equal(t, strength.Score(0), resp.Score)
	assert.Equal(t, strength.Weak, resp.Tier)
	assert.Equal(t, strength.Criteria{}, resp.Criteria)
}

func TestCheckBatch(t *testing.T) {
	svc := NewStrengthService()

	resp, err := svc.CheckBatch(model.BatchStrengthRequest{
		Passwords: []string{"password", "Password123!", ""},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)

	assert.Equal(t, strength.Score(25), resp.Results[0].Score)
	assert.Equal(t, strength.Weak, resp.Results[0].Tier)
	assert.Equal(t, strength.Score(100), resp.Results[1].Score)
	assert.Equal(t, strength.VeryStrong, resp.Results[1].Tier)
	assert.Equal(t, strength.Score(0), resp.Results[2].Score)
}

func TestCheckBatch_Limits(t *testing.T) {
	svc := NewStrengthService()

	_, err := svc.CheckBatch(model.BatchStrengthRequest{})
	assert.ErrorIs(t, err, ErrBatchEmpty)

	_, err = svc.CheckBatch(model.BatchStrengthRequest{Passwords: make([]string, MaxBatchSize+1)})
	assert.ErrorIs(t, err, ErrBatchTooLarge)

	resp, err := svc.CheckBatch(model.BatchStrengthRequest{Passwords: make([]string, MaxBatchSize)})
	require.NoError(t, err)
	assert.Len(t, resp.Results, MaxBatchSize)
}
