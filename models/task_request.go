package models

import (
	"time"

	"taskmarket-server/core"
)

// TaskRequest is a worker's bid on a task. One bid per (task, worker) pair;
// its status is independent of the task's until the customer resolves it.
type TaskRequest struct {
	ID        uint               `json:"id" gorm:"primaryKey"`
	TaskID    uint               `json:"task_id" gorm:"not null;uniqueIndex:idx_task_requests_task_worker"`
	Task      Task               `json:"task,omitempty" gorm:"foreignKey:TaskID"`
	WorkerID  uint               `json:"worker_id" gorm:"not null;uniqueIndex:idx_task_requests_task_worker"`
	Worker    Worker             `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
	Status    core.RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'requested';check:status IN ('requested','accepted','rejected')"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func (TaskRequest) TableName() string {
	return "task_requests"
}
