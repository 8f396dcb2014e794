package handlers

import (
	"errors"
	"net/http"

	"food-ordering-api/auth"
	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/pricing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const orderListLimit = 50

type PlaceOrderRequest struct {
	RestaurantID string                `json:"restaurantId" binding:"required"`
	Items        []pricing.LineRequest `json:"items" binding:"required,min=1,dive"`
}

// PlaceOrder prices the requested items against the restaurant's menu and
// creates the order. The total is server-computed, never trusted from the
// client, and nothing is persisted unless every line resolves.
func PlaceOrder(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "auth context missing"})
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if _, err := uuid.Parse(req.RestaurantID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.Preload("Menu").First(&restaurant, "id = ?", req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}

	lines, total, err := pricing.Price(restaurant.Menu, req.Items)
	if err != nil {
		var unknown *pricing.UnknownMenuItemError
		if errors.As(err, &unknown) {
			c.JSON(http.StatusBadRequest, gin.H{"error": unknown.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		return
	}

	order := models.Order{
		UserID:       identity.SubjectID,
		RestaurantID: restaurant.ID,
		Items:        lines,
		Total:        total,
		Status:       models.StatusPlaced,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ListMyOrders returns the caller's own orders, newest first, capped at 50.
func ListMyOrders(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "auth context missing"})
		return
	}

	var orders []models.Order
	err := config.DB.Preload("Items").
		Where("user_id = ?", identity.SubjectID).
		Order("created_at desc").
		Limit(orderListLimit).
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrder returns a single order to its owner or to an admin.
func GetOrder(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "auth context missing"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	if !auth.CanAccessOrder(identity.SubjectID, identity.Role, order.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	c.JSON(http.StatusOK, order)
}
