package models

import "time"

// HourlyRateApproval is created at worker registration with the proposed
// rate. An admin approving it copies the rate onto the worker profile and
// activates the account.
type HourlyRateApproval struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	WorkerID     uint      `json:"worker_id" gorm:"not null;index"`
	Worker       Worker    `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
	HourlyRate   float64   `json:"hourly_rate" gorm:"type:decimal(10,2);not null"`
	Approved     bool      `json:"approved" gorm:"default:false"`
	ApprovedByID *uint     `json:"approved_by_id"`
	ApprovedBy   *User     `json:"approved_by,omitempty" gorm:"foreignKey:ApprovedByID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (HourlyRateApproval) TableName() string {
	return "hourly_rate_approvals"
}
