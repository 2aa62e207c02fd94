package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmarket-server/core"
)

func TestTaskWindow(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	task := Task{StartTime: start, EndTime: end}
	assert.Equal(t, core.Window{Start: start, End: end}, task.Window())
}

func TestTaskEstimatedCost(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("no worker assigned", func(t *testing.T) {
		task := Task{StartTime: start, EndTime: start.Add(time.Hour)}
		assert.Nil(t, task.EstimatedCost())
	})

	t.Run("worker without approved rate", func(t *testing.T) {
		task := Task{
			StartTime: start,
			EndTime:   start.Add(time.Hour),
			Worker:    &Worker{HourlyRate: 0},
		}
		assert.Nil(t, task.EstimatedCost())
	})

	t.Run("rate times duration", func(t *testing.T) {
		task := Task{
			StartTime: start,
			EndTime:   start.Add(90 * time.Minute),
			Worker:    &Worker{HourlyRate: 40},
		}
		cost := task.EstimatedCost()
		require.NotNil(t, cost)
		assert.InDelta(t, 60.0, *cost, 0.001)
	})
}

func TestNewTaskResponseCarriesCost(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	task := Task{
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Worker:    &Worker{HourlyRate: 25},
	}

	resp := NewTaskResponse(task)
	require.NotNil(t, resp.EstimatedCost)
	assert.InDelta(t, 25.0, *resp.EstimatedCost, 0.001)

	unassigned := NewTaskResponse(Task{StartTime: start, EndTime: start.Add(time.Hour)})
	assert.Nil(t, unassigned.EstimatedCost)
}
