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

func setupTestDBForInventory(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&models.Product{}, &models.InventoryTransaction{})
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	product := models.Product{
		CategoryID:      1,
		Name:            "Farofa",
		Price:           8.0,
		Available:       true,
		StockManagement: true,
		StockQuantity:   10,
	}
	db.Create(&product)
	return db
}

func setupInventoryRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.Use(fakeAuth(1, "admin"))
	inventoryCtrl := controllers.NewInventoryController(db)
	router.POST("/inventory/adjust", inventoryCtrl.AdjustStock)
	router.GET("/inventory/transactions", inventoryCtrl.GetTransactions)
	router.GET("/inventory/low-stock", inventoryCtrl.GetLowStock)
	return router
}

func adjustStock(router *gin.Engine, payload map[string]interface{}) *httptest.ResponseRecorder {
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/inventory/adjust", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAdjustStockIn(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForInventory(t)
	router := setupInventoryRouter(db)

	w := adjustStock(router, map[string]interface{}{
		"product_id": 1,
		"quantity":   5,
		"type":       "in",
		"reason":     "purchase",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 15.0, data["stock_quantity"])

	var entry models.InventoryTransaction
	assert.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "in", entry.Type)
	assert.Equal(t, 10, entry.PreviousQuantity)
	assert.Equal(t, 15, entry.NewQuantity)

	// Audit trail is exposed over HTTP too
	req, _ := http.NewRequest("GET", "/inventory/transactions?product_id=1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	var listResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Len(t, listResp["data"].([]interface{}), 1)
}

func TestAdjustStockRejectsReservationTypes(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForInventory(t)
	router := setupInventoryRouter(db)

	// reserved/released only move through the order lifecycle
	for _, typ := range []string{"reserved", "released"} {
		w := adjustStock(router, map[string]interface{}{
			"product_id": 1,
			"quantity":   1,
			"type":       typ,
			"reason":     "adjustment",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "type %s", typ)
	}
}

func TestAdjustStockOutBeyondAvailable(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForInventory(t)
	router := setupInventoryRouter(db)

	w := adjustStock(router, map[string]interface{}{
		"product_id": 1,
		"quantity":   11,
		"type":       "out",
		"reason":     "loss",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetLowStock(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForInventory(t)
	router := setupInventoryRouter(db)

	db.Create(&models.Product{
		CategoryID:      1,
		Name:            "Quase Acabando",
		Price:           5.0,
		Available:       true,
		StockManagement: true,
		StockQuantity:   2,
	})

	req, _ := http.NewRequest("GET", "/inventory/low-stock?threshold=3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	assert.Len(t, items, 1)
	assert.Equal(t, "Quase Acabando", items[0].(map[string]interface{})["name"])
}
