package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/CristianV1-A/idoe-projeto/internal/database"
	"github.com/CristianV1-A/idoe-projeto/internal/models"
	"github.com/CristianV1-A/idoe-projeto/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const feedCacheKey = "cache:clothing_items:feed"
const feedCacheTTL = 30 * time.Second

// Column list shared by the feed and detail queries. Both enrich the item
// with the donor's name and location via an inner join, so items whose
// owner row is missing simply don't show up.
const clothingItemViewColumns = `clothing_items.id, clothing_items.user_id, clothing_items.title,
	clothing_items.description, clothing_items.category, clothing_items.size, clothing_items.condition,
	clothing_items.image_url, clothing_items.is_available, clothing_items.created_at,
	users.name AS donor_name, users.location AS donor_location`

// CreateClothingItem handles POST /api/clothing-items
func CreateClothingItem(c *gin.Context) {
	var input struct {
		UserID      uint             `json:"user_id" binding:"required"`
		Title       string           `json:"title" binding:"required"`
		Description *string          `json:"description"`
		Category    models.Category  `json:"category" binding:"required"`
		Size        models.Size      `json:"size" binding:"required"`
		Condition   models.Condition `json:"condition" binding:"required"`
		ImageURL    *string          `json:"image_url"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// The dropdown values are a closed set; anything else is a client bug.
	if !models.IsValidCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}
	if !models.IsValidSize(input.Size) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size"})
		return
	}
	if !models.IsValidCondition(input.Condition) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid condition"})
		return
	}

	item := models.ClothingItem{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Size:        input.Size,
		Condition:   input.Condition,
		ImageURL:    input.ImageURL,
		IsAvailable: true,
	}

	if err := database.DB.Create(&item).Error; err != nil {
		logger.Error().Err(err).Uint("user_id", input.UserID).Msg("Failed to create clothing item")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create clothing item"})
		return
	}

	if err := database.CacheInvalidate(feedCacheKey); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate feed cache")
	}

	c.JSON(http.StatusOK, item)
}

// ListClothingItems handles GET /api/clothing-items
// Returns every available item, newest first, with donor name/location.
func ListClothingItems(c *gin.Context) {
	var items []models.ClothingItemView

	if err := database.CacheGet(feedCacheKey, &items); err == nil {
		c.JSON(http.StatusOK, items)
		return
	}

	err := database.DB.Table("clothing_items").
		Select(clothingItemViewColumns).
		Joins("JOIN users ON users.id = clothing_items.user_id").
		Where("clothing_items.is_available = ?", true).
		Order("clothing_items.created_at DESC, clothing_items.id DESC").
		Scan(&items).Error
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch clothing items")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clothing items"})
		return
	}

	if items == nil {
		items = []models.ClothingItemView{}
	}

	if err := database.CacheSet(feedCacheKey, items, feedCacheTTL); err != nil && database.Redis != nil {
		logger.Warn().Err(err).Msg("Failed to cache feed")
	}

	c.JSON(http.StatusOK, items)
}

// GetClothingItem handles GET /api/clothing-items/:id
func GetClothingItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var item models.ClothingItemView
	err = database.DB.Table("clothing_items").
		Select(clothingItemViewColumns).
		Joins("JOIN users ON users.id = clothing_items.user_id").
		Where("clothing_items.id = ?", id).
		Take(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Clothing item not found"})
			return
		}
		logger.Error().Err(err).Uint64("id", id).Msg("Failed to fetch clothing item")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clothing item"})
		return
	}

	c.JSON(http.StatusOK, item)
}
