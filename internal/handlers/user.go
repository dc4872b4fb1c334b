package handlers

import (
	"errors"
	"net/http"

	"github.com/CristianV1-A/idoe-projeto/internal/config"
	"github.com/CristianV1-A/idoe-projeto/internal/database"
	"github.com/CristianV1-A/idoe-projeto/internal/models"
	"github.com/CristianV1-A/idoe-projeto/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterUser handles POST /api/users
func RegisterUser(c *gin.Context) {
	var input struct {
		Name     string  `json:"name" binding:"required"`
		Email    string  `json:"email" binding:"required"`
		Phone    *string `json:"phone"`
		Location *string `json:"location"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// Registration policy knob: with duplicates disallowed we pre-check.
	// The check is advisory (no unique constraint on email), which is
	// acceptable for a policy setting; lookups resolve by lowest id.
	if !config.AppConfig.AllowDuplicateEmails {
		var count int64
		if err := database.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
			logger.Error().Err(err).Msg("Failed to check existing email")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Location: input.Location,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		logger.Error().Err(err).Str("email", input.Email).Msg("Failed to create user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUserByEmail handles GET /api/users/:email
// This is the app's whole "login": present a known email, get the account.
func GetUserByEmail(c *gin.Context) {
	email := c.Param("email")

	var user models.User
	err := database.DB.Where("email = ?", email).Order("id asc").First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error().Err(err).Str("email", email).Msg("Failed to find user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find user"})
		return
	}

	c.JSON(http.StatusOK, user)
}
