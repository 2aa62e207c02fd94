package models

import (
	"time"

	"taskmarket-server/core"
)

// Task is a unit of work posted by a customer. The worker reference is
// optional until a task request is accepted (or the customer assigns one
// directly at creation). Tasks are never deleted in normal flow.
type Task struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	CustomerID  uint            `json:"customer_id" gorm:"not null;index"`
	Customer    Customer        `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	WorkerID    *uint           `json:"worker_id" gorm:"index"`
	Worker      *Worker         `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
	Title       string          `json:"title" gorm:"size:100;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Location    string          `json:"location" gorm:"size:255"`
	StartTime   time.Time       `json:"start_time" gorm:"not null;index"`
	EndTime     time.Time       `json:"end_time" gorm:"not null"`
	Status      core.TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'requested';check:status IN ('requested','in-progress','completed','rejected')"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}

// Window returns the task's half-open [start, end) interval.
func (t *Task) Window() core.Window {
	return core.Window{Start: t.StartTime, End: t.EndTime}
}

// EstimatedCost derives hourly_rate x duration when a worker is assigned.
// Nothing is persisted; the value is computed on read only.
func (t *Task) EstimatedCost() *float64 {
	if t.Worker == nil || t.Worker.HourlyRate <= 0 {
		return nil
	}
	cost := t.Worker.HourlyRate * t.EndTime.Sub(t.StartTime).Hours()
	return &cost
}

// TaskCreateRequest is the payload for posting a task. WorkerID directly
// targets a worker; the availability check runs before the task persists.
type TaskCreateRequest struct {
	Title       string    `json:"title" binding:"required,max=100"`
	Description string    `json:"description"`
	Location    string    `json:"location" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	WorkerID    *uint     `json:"worker_id"`
}

// TaskUpdateRequest carries the customer-editable fields. Status changes go
// through the dedicated transition endpoints, not here.
type TaskUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
}

// TaskResponse augments a task with its derived cost estimate.
type TaskResponse struct {
	Task
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
}

func NewTaskResponse(t Task) TaskResponse {
	return TaskResponse{Task: t, EstimatedCost: t.EstimatedCost()}
}
