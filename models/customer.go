package models

import "time"

// Customer is the profile record behind a user with the customer role,
// created atomically with registration.
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Tasks   []Task   `json:"tasks,omitempty" gorm:"foreignKey:CustomerID"`
	Ratings []Rating `json:"ratings,omitempty" gorm:"foreignKey:CustomerID"`
}

func (Customer) TableName() string {
	return "customers"
}
