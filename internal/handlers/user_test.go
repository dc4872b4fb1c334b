package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CristianV1-A/idoe-projeto/internal/config"
	"github.com/CristianV1-A/idoe-projeto/internal/database"
	"github.com/CristianV1-A/idoe-projeto/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func postJSON(t *testing.T, handler gin.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/", bytes.NewBuffer(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	handler(c)
	return w
}

func TestRegisterUser(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	w := postJSON(t, RegisterUser, map[string]interface{}{
		"name":     "Ana Souza",
		"email":    "ana@exemplo.com",
		"phone":    "+55 11 98888-0001",
		"location": "São Paulo",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var user models.User
	json.Unmarshal(w.Body.Bytes(), &user)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Ana Souza", user.Name)
	assert.Equal(t, "ana@exemplo.com", user.Email)
	assert.NotNil(t, user.Phone)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegisterUser_MissingFields(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	w := postJSON(t, RegisterUser, map[string]interface{}{"name": "Sem Email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterUser_DuplicateEmailRejected(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	body := map[string]interface{}{"name": "Ana", "email": "dup@exemplo.com"}

	w := postJSON(t, RegisterUser, body)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, RegisterUser, body)
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	database.DB.Model(&models.User{}).Where("email = ?", "dup@exemplo.com").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterUser_DuplicateEmailAllowed(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)
	config.AppConfig.AllowDuplicateEmails = true

	body := map[string]interface{}{"name": "Ana", "email": "dup@exemplo.com"}

	first := postJSON(t, RegisterUser, body)
	assert.Equal(t, http.StatusOK, first.Code)
	second := postJSON(t, RegisterUser, body)
	assert.Equal(t, http.StatusOK, second.Code)

	var firstUser models.User
	json.Unmarshal(first.Body.Bytes(), &firstUser)

	// Lookup disambiguates by lowest id
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/users/dup@exemplo.com", nil)
	c.Params = gin.Params{{Key: "email", Value: "dup@exemplo.com"}}

	GetUserByEmail(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var found models.User
	json.Unmarshal(w.Body.Bytes(), &found)
	assert.Equal(t, firstUser.ID, found.ID)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/users/ghost@exemplo.com", nil)
	c.Params = gin.Params{{Key: "email", Value: "ghost@exemplo.com"}}

	GetUserByEmail(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
