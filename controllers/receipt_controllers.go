package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wandersilva5/foodie-hub-api/models"
	"github.com/wandersilva5/foodie-hub-api/utils"
)

type ReceiptController struct {
	DB *gorm.DB
}

func NewReceiptController(db *gorm.DB) *ReceiptController {
	return &ReceiptController{DB: db}
}

// GenerateReceipt -> build the receipt for a completed payment. One
// receipt per payment; calling twice returns the existing one.
func (rc *ReceiptController) GenerateReceipt(c *gin.Context) {
	paymentID, err := strconv.Atoi(c.Param("payment_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.Receipt
	if err := rc.DB.Preload("Items").Where("payment_id = ?", paymentID).First(&existing).Error; err == nil {
		utils.RespondJSON(c, http.StatusOK, "Receipt already generated", existing)
		return
	}

	var payment models.Payment
	if err := rc.DB.First(&payment, paymentID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if payment.Status != "completed" {
		utils.RespondError(c, http.StatusConflict, errors.New("payment is not completed"))
		return
	}

	var order models.Order
	if err := rc.DB.Preload("Items.Product").First(&order, payment.OrderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	receipt := models.Receipt{
		Number:    fmt.Sprintf("RCP-%s-%s", time.Now().Format("20060102"), uuid.NewString()[:8]),
		OrderID:   order.ID,
		PaymentID: payment.ID,
		Subtotal:  order.Total,
		Total:     order.Total,
		CreatedAt: time.Now(),
	}

	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&receipt).Error; err != nil {
			return err
		}
		for _, item := range order.Items {
			line := models.ReceiptItem{
				ReceiptID: receipt.ID,
				Name:      item.Product.Name,
				Quantity:  item.Quantity,
				Price:     item.Price,
				Subtotal:  float64(item.Quantity) * item.Price,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			receipt.Items = append(receipt.Items, line)
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Receipt %s generated for order %d (%s)",
		receipt.Number, order.ID, utils.FormatCurrency(receipt.Total))
	utils.RespondJSON(c, http.StatusCreated, "Receipt generated", receipt)
}

// GetReceiptByOrder -> the receipt that settled an order
func (rc *ReceiptController) GetReceiptByOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var receipt models.Receipt
	if err := rc.DB.Preload("Items").Where("order_id = ?", orderID).First(&receipt).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Receipt detail", receipt)
}
