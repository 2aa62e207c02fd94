package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleWorker   UserRole = "worker"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Username        string    `json:"username" gorm:"size:150;uniqueIndex;not null"`
	Email           string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PhoneNumber     string    `json:"phone_number" gorm:"size:20;not null"`
	PasswordHash    string    `json:"-" gorm:"size:255;not null"`
	Role            UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'customer';check:role IN ('customer','worker','admin')"`
	IsActive        bool      `json:"is_active" gorm:"default:false"`
	EmailVerified   bool      `json:"email_verified" gorm:"default:false"`
	ActivationToken string    `json:"-" gorm:"size:36;index"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:UserID"`
	Worker   *Worker   `json:"worker,omitempty" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate is a GORM hook that runs before creating a user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	return nil
}

func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}

func (u *User) IsWorker() bool {
	return u.Role == RoleWorker
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RegisterRequest is the registration payload shared by both roles.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=150"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required,min=8,max=128"`
}

// WorkerRegisterRequest extends registration with worker profile fields.
type WorkerRegisterRequest struct {
	RegisterRequest
	Location   string   `json:"location" binding:"required"`
	HourlyRate float64  `json:"hourly_rate" binding:"required,gt=0"`
	Skills     []string `json:"skills" binding:"required,min=1"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
