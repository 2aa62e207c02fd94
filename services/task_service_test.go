package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmarket-server/core"
)

func TestTaskServiceCreateDirectAssignment(t *testing.T) {
	db := newTestDB(t)
	tasks := NewTaskService(db)

	custUser, _ := seedCustomer(t, db, "alice")
	_, worker := seedWorker(t, db, "bob")

	first, err := tasks.Create(custUser, newTask(&worker.ID, 10, 12))
	require.NoError(t, err)
	require.NotNil(t, first.WorkerID)
	assert.Equal(t, worker.ID, *first.WorkerID)
	assert.Equal(t, core.TaskRequested, first.Status)

	_, err = tasks.Create(custUser, newTask(&worker.ID, 11, 13))
	require.Error(t, err)
	var conflict *core.AvailabilityConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, first.ID, conflict.ConflictTaskID)

	// a shared boundary instant is not a conflict
	_, err = tasks.Create(custUser, newTask(&worker.ID, 12, 14))
	assert.NoError(t, err)
}

func TestTaskServiceCreateRejectsInvertedWindow(t *testing.T) {
	db := newTestDB(t)
	tasks := NewTaskService(db)

	custUser, _ := seedCustomer(t, db, "alice")

	_, err := tasks.Create(custUser, newTask(nil, 12, 10))
	require.Error(t, err)
	var rangeErr *core.InvalidRangeError
	assert.True(t, errors.As(err, &rangeErr))
}

func TestTaskServiceRejectClearsWorker(t *testing.T) {
	db := newTestDB(t)
	tasks := NewTaskService(db)

	custUser, _ := seedCustomer(t, db, "alice")
	_, worker := seedWorker(t, db, "bob")

	task, err := tasks.Create(custUser, newTask(&worker.ID, 10, 12))
	require.NoError(t, err)

	rejected, err := tasks.Reject(custUser, task.ID)
	require.NoError(t, err)
	assert.Equal(t, core.TaskRejected, rejected.Status)
	assert.Nil(t, rejected.WorkerID)

	// rejected is terminal
	_, err = tasks.Reject(custUser, task.ID)
	var ve *core.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, core.IllegalTransition, ve.Kind)
}
