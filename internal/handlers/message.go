package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/CristianV1-A/idoe-projeto/internal/database"
	"github.com/CristianV1-A/idoe-projeto/internal/models"
	"github.com/CristianV1-A/idoe-projeto/pkg/logger"
	"github.com/gin-gonic/gin"
)

// MaxMessageLength caps a single chat message, in runes.
const MaxMessageLength = 8000

// SendMessage handles POST /api/messages
// Sender participation in the chat is not checked; the client only offers
// the send box inside a chat the user already belongs to.
func SendMessage(c *gin.Context) {
	var input struct {
		ChatID   uint   `json:"chat_id" binding:"required"`
		SenderID uint   `json:"sender_id" binding:"required"`
		Content  string `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		return
	}
	if utf8.RuneCountInString(content) > MaxMessageLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message exceeds maximum length"})
		return
	}

	message := models.Message{
		ChatID:   input.ChatID,
		SenderID: input.SenderID,
		Content:  content,
	}

	if err := database.DB.Create(&message).Error; err != nil {
		logger.Error().Err(err).Uint("chat_id", input.ChatID).Msg("Failed to send message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, message)
}

// ListMessagesForChat handles GET /api/messages/chat/:chatId
// Chronological order (oldest first), the opposite of the listing feeds.
func ListMessagesForChat(c *gin.Context) {
	chatID, err := strconv.ParseUint(c.Param("chatId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat id"})
		return
	}

	var messages []models.MessageView
	err = database.DB.Table("messages").
		Select(`messages.id, messages.chat_id, messages.sender_id, messages.content, messages.created_at,
			users.name AS sender_name`).
		Joins("JOIN users ON users.id = messages.sender_id").
		Where("messages.chat_id = ?", chatID).
		Order("messages.created_at ASC, messages.id ASC").
		Scan(&messages).Error
	if err != nil {
		logger.Error().Err(err).Uint64("chat_id", chatID).Msg("Failed to fetch messages")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	if messages == nil {
		messages = []models.MessageView{}
	}

	c.JSON(http.StatusOK, messages)
}
