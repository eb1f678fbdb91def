package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/wandersilva5/foodie-hub-api/controllers"
	"github.com/wandersilva5/foodie-hub-api/models"
	"github.com/wandersilva5/foodie-hub-api/utils"
)

func setupTestDBForRegister(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Order{},
		&models.Payment{},
		&models.RegisterSession{},
		&models.RegisterTransaction{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupRegisterRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.Use(fakeAuth(3, "cashier"))
	registerCtrl := controllers.NewRegisterController(db)
	paymentCtrl := controllers.NewPaymentController(db)
	router.POST("/register/sessions", registerCtrl.OpenSession)
	router.PATCH("/register/sessions/:session_id/close", registerCtrl.CloseSession)
	router.GET("/register/sessions/active", registerCtrl.GetActiveSession)
	router.POST("/payments", paymentCtrl.CreatePayment)
	return router
}

func openSession(router *gin.Engine, amount float64) *httptest.ResponseRecorder {
	payloadBytes, _ := json.Marshal(map[string]interface{}{"opening_amount": amount})
	req, _ := http.NewRequest("POST", "/register/sessions", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOpenAndCloseSession(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRegister(t)
	router := setupRegisterRouter(db)

	w := openSession(router, 100.0)
	assert.Equal(t, http.StatusCreated, w.Code)

	var openResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &openResp))
	data := openResp["data"].(map[string]interface{})
	sessionID := int(data["id"].(float64))
	assert.Equal(t, "open", data["status"])
	assert.Equal(t, 100.0, data["expected_closing_amount"])

	// Fold a cash payment into the drawer
	db.Create(&models.Order{Status: "delivered", Total: 50.0, PaymentStatus: "pending"})
	payloadBytes, _ := json.Marshal(map[string]interface{}{
		"order_id":        1,
		"method":          "cash",
		"amount":          50.0,
		"amount_received": 50.0,
	})
	req, _ := http.NewRequest("POST", "/payments", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Close 5 short of the projection
	payloadBytes, _ = json.Marshal(map[string]interface{}{
		"actual_closing_amount": 145.0,
		"notes":                 "end of shift",
	})
	url := "/register/sessions/" + strconv.Itoa(sessionID) + "/close"
	req, _ = http.NewRequest("PATCH", url, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var closeResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &closeResp))
	closed := closeResp["data"].(map[string]interface{})
	assert.Equal(t, "closed", closed["status"])
	assert.Equal(t, 150.0, closed["expected_closing_amount"])
	assert.Equal(t, -5.0, closed["difference"])

	// Closing again conflicts
	req, _ = http.NewRequest("PATCH", url, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSecondOpenSessionConflicts(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRegister(t)
	router := setupRegisterRouter(db)

	assert.Equal(t, http.StatusCreated, openSession(router, 80.0).Code)
	assert.Equal(t, http.StatusConflict, openSession(router, 90.0).Code)
}

func TestActiveSessionWhenRegisterClosed(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRegister(t)
	router := setupRegisterRouter(db)

	req, _ := http.NewRequest("GET", "/register/sessions/active", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "No open register session", resp["message"])
	assert.Nil(t, resp["data"])
}
