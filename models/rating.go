package models

import "time"

// Rating is post-completion feedback from a customer to a worker, scoped to
// one resolved task request. One rating per (customer, task_request) pair.
type Rating struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	CustomerID    uint        `json:"customer_id" gorm:"not null;uniqueIndex:idx_ratings_customer_request"`
	Customer      Customer    `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	TaskRequestID uint        `json:"task_request_id" gorm:"not null;uniqueIndex:idx_ratings_customer_request"`
	TaskRequest   TaskRequest `json:"task_request,omitempty" gorm:"foreignKey:TaskRequestID"`
	WorkerID      uint        `json:"worker_id" gorm:"not null;index"`
	Worker        Worker      `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
	Rating        int         `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment       string      `json:"comment" gorm:"type:text"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (Rating) TableName() string {
	return "ratings"
}

// RatingCreateRequest is the payload for creating or updating a rating.
// Range checking happens in core so violations carry the error taxonomy.
type RatingCreateRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
