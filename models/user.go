package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role defines allowed roles in the system
type Role string

const (
	RoleUser       Role = "user"
	RoleRestaurant Role = "restaurant"
	RoleAdmin      Role = "admin"
)

type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"not null;default:'user'"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
