package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
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

func setupTestDBForPayments(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.RegisterSession{},
		&models.RegisterTransaction{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	order := models.Order{
		Status:        "delivered",
		Total:         55.0,
		PaymentStatus: "pending",
	}
	db.Create(&order)
	return db
}

func setupPaymentRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.Use(fakeAuth(2, "cashier"))
	paymentCtrl := controllers.NewPaymentController(db)
	router.POST("/payments", paymentCtrl.CreatePayment)
	router.GET("/payments/:payment_id", paymentCtrl.GetPaymentByID)
	return router
}

func postPayment(router *gin.Engine, payload map[string]interface{}) *httptest.ResponseRecorder {
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/payments", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateCashPayment(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPayments(t)
	router := setupPaymentRouter(db)

	w := postPayment(router, map[string]interface{}{
		"order_id":        1,
		"method":          "cash",
		"amount":          55.0,
		"amount_received": 60.0,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Payment recorded", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "completed", data["status"])
	assert.Equal(t, 5.0, data["change"])
	assert.NotEmpty(t, data["reference_id"])

	var order models.Order
	assert.NoError(t, db.First(&order, 1).Error)
	assert.Equal(t, "paid", order.PaymentStatus)
	assert.Equal(t, "cash", order.PaymentMethod)
}

func TestPaymentAmountMustMatchTotal(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPayments(t)
	router := setupPaymentRouter(db)

	w := postPayment(router, map[string]interface{}{
		"order_id": 1,
		"method":   "pix",
		"amount":   30.0,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCashPaymentRequiresEnoughReceived(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPayments(t)
	router := setupPaymentRouter(db)

	w := postPayment(router, map[string]interface{}{
		"order_id":        1,
		"method":          "cash",
		"amount":          55.0,
		"amount_received": 50.0,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPayingTwiceIsRejected(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPayments(t)
	router := setupPaymentRouter(db)

	payload := map[string]interface{}{
		"order_id": 1,
		"method":   "credit",
		"amount":   55.0,
	}
	assert.Equal(t, http.StatusCreated, postPayment(router, payload).Code)
	assert.Equal(t, http.StatusConflict, postPayment(router, payload).Code)
}

func TestPaymentForUnknownOrder(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPayments(t)
	router := setupPaymentRouter(db)

	w := postPayment(router, map[string]interface{}{
		"order_id": 99,
		"method":   "debit",
		"amount":   10.0,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
