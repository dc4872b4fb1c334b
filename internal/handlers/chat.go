package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/CristianV1-A/idoe-projeto/internal/database"
	"github.com/CristianV1-A/idoe-projeto/internal/models"
	"github.com/CristianV1-A/idoe-projeto/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetOrCreateChat handles POST /api/chats
//
// Find-or-create on the (item, donor, requester) triple. The read-then-insert
// is racy on its own, so the chats table carries a unique index over the
// triple; a loser of the race gets a unique violation and re-reads the row
// the winner inserted. Either way the caller sees exactly one chat.
func GetOrCreateChat(c *gin.Context) {
	var input struct {
		ClothingItemID uint `json:"clothing_item_id" binding:"required"`
		DonorID        uint `json:"donor_id" binding:"required"`
		RequesterID    uint `json:"requester_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var chat models.Chat
	err := database.DB.
		Where("clothing_item_id = ? AND donor_id = ? AND requester_id = ?",
			input.ClothingItemID, input.DonorID, input.RequesterID).
		First(&chat).Error
	if err == nil {
		c.JSON(http.StatusOK, chat)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error().Err(err).Msg("Failed to look up chat")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create/find chat"})
		return
	}

	chat = models.Chat{
		ClothingItemID: input.ClothingItemID,
		DonorID:        input.DonorID,
		RequesterID:    input.RequesterID,
	}

	if err := database.DB.Create(&chat).Error; err != nil {
		if database.IsUniqueViolation(err) {
			// Lost the race: another request inserted the triple first.
			if err := database.DB.
				Where("clothing_item_id = ? AND donor_id = ? AND requester_id = ?",
					input.ClothingItemID, input.DonorID, input.RequesterID).
				First(&chat).Error; err == nil {
				c.JSON(http.StatusOK, chat)
				return
			}
		}
		logger.Error().Err(err).
			Uint("clothing_item_id", input.ClothingItemID).
			Uint("donor_id", input.DonorID).
			Uint("requester_id", input.RequesterID).
			Msg("Failed to create chat")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create/find chat"})
		return
	}

	c.JSON(http.StatusOK, chat)
}

// ListChatsForUser handles GET /api/chats/user/:userId
// Returns every chat where the user is donor or requester, newest first,
// enriched with the item title and both participant names.
func ListChatsForUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var chats []models.ChatView
	err = database.DB.Table("chats").
		Select(`chats.id, chats.clothing_item_id, chats.donor_id, chats.requester_id, chats.created_at,
			clothing_items.title AS item_title, donor.name AS donor_name, requester.name AS requester_name`).
		Joins("JOIN clothing_items ON clothing_items.id = chats.clothing_item_id").
		Joins("JOIN users AS donor ON donor.id = chats.donor_id").
		Joins("JOIN users AS requester ON requester.id = chats.requester_id").
		Where("chats.donor_id = ? OR chats.requester_id = ?", userID, userID).
		Order("chats.created_at DESC, chats.id DESC").
		Scan(&chats).Error
	if err != nil {
		logger.Error().Err(err).Uint64("user_id", userID).Msg("Failed to fetch chats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chats"})
		return
	}

	if chats == nil {
		chats = []models.ChatView{}
	}

	c.JSON(http.StatusOK, chats)
}
