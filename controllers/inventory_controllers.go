package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wandersilva5/foodie-hub-api/events"
	"github.com/wandersilva5/foodie-hub-api/models"
	"github.com/wandersilva5/foodie-hub-api/services"
	"github.com/wandersilva5/foodie-hub-api/utils"
)

type InventoryController struct {
	DB     *gorm.DB
	Ledger *services.InventoryService
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{
		DB:     db,
		Ledger: services.NewInventoryService(db),
	}
}

// AdjustStock -> manual stock movement (restock, loss, correction).
// Reservation and release never go through here; they belong to the
// order lifecycle.
func (ic *InventoryController) AdjustStock(c *gin.Context) {
	var req struct {
		ProductID uint   `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required,gt=0"`
		Type      string `json:"type" binding:"required,oneof=in out"`
		Reason    string `json:"reason" binding:"required,oneof=purchase adjustment loss return"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	upd := services.StockUpdate{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Type:      req.Type,
		Reason:    req.Reason,
		UserID:    actingUserID(c),
		Notes:     req.Notes,
	}
	if err := ic.Ledger.UpdateStock(upd); err != nil {
		respondServiceError(c, err)
		return
	}

	var product models.Product
	if err := ic.DB.First(&product, req.ProductID).Error; err == nil {
		if product.StockManagement && product.StockQuantity <= 5 {
			events.BroadcastStockAlert(product)
		}
		utils.RespondJSON(c, http.StatusOK, "Stock updated", product)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Stock updated", nil)
}

// GetTransactions -> audit trail, newest first
func (ic *InventoryController) GetTransactions(c *gin.Context) {
	var productID uint
	if v := c.Query("product_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		productID = uint(id)
	}

	limit := 100
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := ic.Ledger.GetTransactions(productID, limit)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory transactions", entries)
}

// GetLowStock -> managed products at or under the threshold (default 5)
func (ic *InventoryController) GetLowStock(c *gin.Context) {
	threshold := 5
	if v := c.Query("threshold"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			threshold = n
		}
	}

	products, err := ic.Ledger.GetLowStockProducts(threshold)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Low stock products", products)
}
