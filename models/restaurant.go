package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Restaurant struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
	Rating      float64    `json:"rating" gorm:"default:0"`
	Menu        []MenuItem `json:"menu" gorm:"foreignKey:RestaurantID"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type MenuItem struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	RestaurantID string    `json:"restaurantId" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Price        float64   `json:"price" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
