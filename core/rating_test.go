package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eligibleRating() RatingEligibility {
	return RatingEligibility{
		TaskStatus:      TaskCompleted,
		TaskCustomerID:  1,
		RaterCustomerID: 1,
		RaterUserID:     10,
		WorkerUserID:    20,
	}
}

func TestCheckRatingEligibility_Pass(t *testing.T) {
	assert.NoError(t, CheckRatingEligibility(eligibleRating()))
}

func TestCheckRatingEligibility_TaskNotCompleted(t *testing.T) {
	for _, s := range []TaskStatus{TaskRequested, TaskInProgress, TaskRejected} {
		e := eligibleRating()
		e.TaskStatus = s

		err := CheckRatingEligibility(e)
		require.Error(t, err, "status %s", s)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, TaskNotCompleted, ve.Kind)
	}
}

func TestCheckRatingEligibility_NotTaskOwner(t *testing.T) {
	e := eligibleRating()
	e.RaterCustomerID = 2

	err := CheckRatingEligibility(e)
	require.Error(t, err)

	var pe *PermissionError
	assert.True(t, errors.As(err, &pe))
}

func TestCheckRatingEligibility_SelfRating(t *testing.T) {
	e := eligibleRating()
	e.WorkerUserID = e.RaterUserID

	err := CheckRatingEligibility(e)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, SelfRating, ve.Kind)
}

func TestCheckRatingEligibility_Duplicate(t *testing.T) {
	e := eligibleRating()
	e.Existing = true

	err := CheckRatingEligibility(e)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, DuplicateRating, ve.Kind)
}

func TestValidateRatingValue(t *testing.T) {
	for v := MinRating; v <= MaxRating; v++ {
		assert.NoError(t, ValidateRatingValue(v))
	}

	for _, v := range []int{0, -1, 6, 100} {
		err := ValidateRatingValue(v)
		require.Error(t, err, "value %d", v)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, BadRatingValue, ve.Kind)
	}
}
