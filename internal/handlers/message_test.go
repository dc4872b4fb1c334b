package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/CristianV1-A/idoe-projeto/internal/database"
	"github.com/CristianV1-A/idoe-projeto/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func seedMessageFixture(t *testing.T) (donor, requester models.User, chat models.Chat) {
	t.Helper()
	donor = models.User{Name: "Ana", Email: "ana@exemplo.com"}
	requester = models.User{Name: "Bruno", Email: "bruno@exemplo.com"}
	database.DB.Create(&donor)
	database.DB.Create(&requester)

	item := models.ClothingItem{UserID: donor.ID, Title: "Vestido", Category: models.CategoryDresses,
		Size: models.SizeM, Condition: models.ConditionGood, IsAvailable: true}
	database.DB.Create(&item)

	chat = models.Chat{ClothingItemID: item.ID, DonorID: donor.ID, RequesterID: requester.ID}
	database.DB.Create(&chat)
	return
}

func TestSendMessage(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	_, requester, chat := seedMessageFixture(t)

	w := postJSON(t, SendMessage, map[string]interface{}{
		"chat_id":   chat.ID,
		"sender_id": requester.ID,
		"content":   "  Oi! O vestido ainda está disponível?  ",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var msg models.Message
	json.Unmarshal(w.Body.Bytes(), &msg)
	assert.NotZero(t, msg.ID)
	assert.Equal(t, chat.ID, msg.ChatID)
	assert.Equal(t, "Oi! O vestido ainda está disponível?", msg.Content)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestSendMessage_EmptyContent(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	_, requester, chat := seedMessageFixture(t)

	// Missing content fails binding; whitespace-only fails the trim check
	w := postJSON(t, SendMessage, map[string]interface{}{
		"chat_id": chat.ID, "sender_id": requester.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, SendMessage, map[string]interface{}{
		"chat_id": chat.ID, "sender_id": requester.ID, "content": "   \n\t ",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListMessagesForChat_ChronologicalOrder(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	donor, requester, chat := seedMessageFixture(t)

	now := time.Now()
	// Inserted out of order on purpose: thread order must come from
	// created_at, not insertion order.
	m2 := models.Message{ChatID: chat.ID, SenderID: donor.ID, Content: "Está sim!", CreatedAt: now.Add(-1 * time.Minute)}
	m3 := models.Message{ChatID: chat.ID, SenderID: requester.ID, Content: "Posso buscar amanhã?", CreatedAt: now}
	m1 := models.Message{ChatID: chat.ID, SenderID: requester.ID, Content: "Oi!", CreatedAt: now.Add(-2 * time.Minute)}
	database.DB.Create(&m2)
	database.DB.Create(&m3)
	database.DB.Create(&m1)

	w := getWithParam(ListMessagesForChat, "chatId", "1")
	assert.Equal(t, http.StatusOK, w.Code)

	var messages []models.MessageView
	json.Unmarshal(w.Body.Bytes(), &messages)

	assert.Len(t, messages, 3)
	if len(messages) == 3 {
		assert.Equal(t, "Oi!", messages[0].Content)
		assert.Equal(t, "Está sim!", messages[1].Content)
		assert.Equal(t, "Posso buscar amanhã?", messages[2].Content)
		assert.Equal(t, "Bruno", messages[0].SenderName)
		assert.Equal(t, "Ana", messages[1].SenderName)
	}
}

func TestListMessagesForChat_TimestampTieBreak(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	donor, requester, chat := seedMessageFixture(t)

	// Same wall-clock instant: id order (insertion order) decides
	at := time.Now()
	first := models.Message{ChatID: chat.ID, SenderID: donor.ID, Content: "primeira", CreatedAt: at}
	second := models.Message{ChatID: chat.ID, SenderID: requester.ID, Content: "segunda", CreatedAt: at}
	database.DB.Create(&first)
	database.DB.Create(&second)

	w := getWithParam(ListMessagesForChat, "chatId", "1")

	var messages []models.MessageView
	json.Unmarshal(w.Body.Bytes(), &messages)

	assert.Len(t, messages, 2)
	if len(messages) == 2 {
		assert.Equal(t, "primeira", messages[0].Content)
		assert.Equal(t, "segunda", messages[1].Content)
	}
}

func TestListMessagesForChat_ScopedToChat(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	donor, requester, chat := seedMessageFixture(t)

	item2 := models.ClothingItem{UserID: donor.ID, Title: "Casaco", Category: models.CategoryOuterwear,
		Size: models.SizeG, Condition: models.ConditionGood, IsAvailable: true}
	database.DB.Create(&item2)
	otherChat := models.Chat{ClothingItemID: item2.ID, DonorID: donor.ID, RequesterID: requester.ID}
	database.DB.Create(&otherChat)

	database.DB.Create(&models.Message{ChatID: chat.ID, SenderID: requester.ID, Content: "no chat certo"})
	database.DB.Create(&models.Message{ChatID: otherChat.ID, SenderID: requester.ID, Content: "em outro chat"})

	w := getWithParam(ListMessagesForChat, "chatId", "1")

	var messages []models.MessageView
	json.Unmarshal(w.Body.Bytes(), &messages)

	assert.Len(t, messages, 1)
	if len(messages) == 1 {
		assert.Equal(t, "no chat certo", messages[0].Content)
	}
}
