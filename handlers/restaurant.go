package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"food-ordering-api/config"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
}

type CreateRestaurantRequest struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	ImageURL    string            `json:"imageUrl"`
	Menu        []MenuItemRequest `json:"menu" binding:"omitempty,dive"`
}

// CreateRestaurant creates a restaurant with an optional embedded menu.
// Route is gated on the admin or restaurant role.
func CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant := models.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	for _, item := range req.Menu {
		restaurant.Menu = append(restaurant.Menu, models.MenuItem{
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
		})
	}

	if err := config.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

// ListRestaurants returns a paginated restaurant list, optionally filtered
// by a case-insensitive substring of the name (public).
func ListRestaurants(c *gin.Context) {
	q := c.Query("q")
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	filter := func(tx *gorm.DB) *gorm.DB {
		if q != "" {
			tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
		}
		return tx
	}

	var total int64
	if err := filter(config.DB.Model(&models.Restaurant{})).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list restaurants"})
		return
	}

	var restaurants []models.Restaurant
	err := filter(config.DB.Preload("Menu")).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&restaurants).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list restaurants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": restaurants,
		"meta": gin.H{"total": total, "page": page, "limit": limit},
	})
}

// GetRestaurant returns a single restaurant with its menu (public).
func GetRestaurant(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.Preload("Menu").First(&restaurant, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
