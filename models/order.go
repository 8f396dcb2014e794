package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	StatusPlaced OrderStatus = "placed"
)

type Order struct {
	ID           string      `json:"id" gorm:"primaryKey"`
	UserID       string      `json:"userId" gorm:"not null;index"`
	RestaurantID string      `json:"restaurantId" gorm:"not null;index"`
	Items        []OrderLine `json:"items" gorm:"foreignKey:OrderID"`
	Total        float64     `json:"total" gorm:"not null"`
	Status       OrderStatus `json:"status" gorm:"not null;default:'placed'"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderLine is a snapshot of a menu item at order time. Name and price are
// copied, not referenced, so later menu edits never alter placed orders.
type OrderLine struct {
	ID      uint    `json:"-" gorm:"primaryKey"`
	OrderID string  `json:"-" gorm:"not null;index"`
	ItemID  string  `json:"itemId" gorm:"not null"`
	Name    string  `json:"name"`
	Price   float64 `json:"price" gorm:"not null"`
	Qty     int     `json:"qty" gorm:"not null"`
}
