package handlers

import (
	"net/http"
	"strings"

	"food-ordering-api/auth"
	"food-ordering-api/config"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler serves signup and login.
type AuthHandler struct {
	hasher *auth.Hasher
	tokens *auth.TokenService
}

func NewAuthHandler(hasher *auth.Hasher, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{hasher: hasher, tokens: tokens}
}

// Signup creates a new user account with the default role.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing fields"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		// the unique index on email arbitrates concurrent signups
		c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email})
}

// Login verifies credentials and returns an access and a refresh token.
// Unknown email and wrong password yield the identical response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing credentials"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if !h.hasher.Check(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	accessToken, err := h.tokens.IssueAccessToken(user.ID, string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	refreshToken, err := h.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}
