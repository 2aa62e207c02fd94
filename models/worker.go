package models

import "time"

// Worker is the profile record behind a user with the worker role. The
// hourly rate is proposed at registration and takes effect once an admin
// approves it; until then the account stays inactive.
type Worker struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User         User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Location     string    `json:"location" gorm:"size:255"`
	HourlyRate   float64   `json:"hourly_rate" gorm:"type:decimal(10,2);default:0"`
	RateApproved bool      `json:"rate_approved" gorm:"default:false"`
	IsAvailable  bool      `json:"is_available" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Skills   []Skill       `json:"skills,omitempty" gorm:"many2many:worker_skills;"`
	Tasks    []Task        `json:"tasks,omitempty" gorm:"foreignKey:WorkerID"`
	Requests []TaskRequest `json:"requests,omitempty" gorm:"foreignKey:WorkerID"`
}

func (Worker) TableName() string {
	return "workers"
}

// WorkerUpdateRequest is the payload for a worker editing their own profile.
type WorkerUpdateRequest struct {
	PhoneNumber *string  `json:"phone_number"`
	Location    *string  `json:"location"`
	Skills      []string `json:"skills"`
}

type AvailabilityUpdateRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}
