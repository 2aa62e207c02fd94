package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTaskTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    TaskStatus
		to      TaskStatus
		wantErr bool
	}{
		{"requested to in-progress", TaskRequested, TaskInProgress, false},
		{"requested to rejected", TaskRequested, TaskRejected, false},
		{"in-progress to completed", TaskInProgress, TaskCompleted, false},
		{"requested to completed skips in-progress", TaskRequested, TaskCompleted, true},
		{"in-progress to rejected", TaskInProgress, TaskRejected, true},
		{"in-progress back to requested", TaskInProgress, TaskRequested, true},
		{"completed is terminal", TaskCompleted, TaskRequested, true},
		{"completed to in-progress", TaskCompleted, TaskInProgress, true},
		{"rejected is terminal", TaskRejected, TaskInProgress, true},
		{"rejected to requested", TaskRejected, TaskRequested, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTaskTransition(tt.from, tt.to)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTaskTransition_SelfTransitionsIllegal(t *testing.T) {
	for _, s := range []TaskStatus{TaskRequested, TaskInProgress, TaskCompleted, TaskRejected} {
		assert.Error(t, ValidateTaskTransition(s, s), "self-transition from %s", s)
	}
}

func TestValidateRequestTransition(t *testing.T) {
	assert.NoError(t, ValidateRequestTransition(RequestRequested, RequestAccepted))
	assert.NoError(t, ValidateRequestTransition(RequestRequested, RequestRejected))

	assert.Error(t, ValidateRequestTransition(RequestAccepted, RequestRejected))
	assert.Error(t, ValidateRequestTransition(RequestAccepted, RequestRequested))
	assert.Error(t, ValidateRequestTransition(RequestRejected, RequestAccepted))
	assert.Error(t, ValidateRequestTransition(RequestRequested, RequestRequested))
}

func TestValidateTransition_CarriesOffendingPair(t *testing.T) {
	err := ValidateTransition(KindTask, "completed", "requested")
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, IllegalTransition, ve.Kind)
	assert.Equal(t, "completed", ve.From)
	assert.Equal(t, "requested", ve.To)
}

func TestValidateTransition_UnknownKind(t *testing.T) {
	err := ValidateTransition(EntityKind("rating"), "a", "b")
	require.Error(t, err)

	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestTerminalStatuses(t *testing.T) {
	assert.False(t, IsTerminalTaskStatus(TaskRequested))
	assert.False(t, IsTerminalTaskStatus(TaskInProgress))
	assert.True(t, IsTerminalTaskStatus(TaskCompleted))
	assert.True(t, IsTerminalTaskStatus(TaskRejected))

	assert.False(t, IsTerminalRequestStatus(RequestRequested))
	assert.True(t, IsTerminalRequestStatus(RequestAccepted))
	assert.True(t, IsTerminalRequestStatus(RequestRejected))
}
