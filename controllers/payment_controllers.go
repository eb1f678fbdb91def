package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wandersilva5/foodie-hub-api/events"
	"github.com/wandersilva5/foodie-hub-api/models"
	"github.com/wandersilva5/foodie-hub-api/services"
	"github.com/wandersilva5/foodie-hub-api/utils"
)

type PaymentController struct {
	DB       *gorm.DB
	Register *services.RegisterService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:       db,
		Register: services.NewRegisterService(db),
	}
}

// CreatePayment -> settle an order. The amount must cover the order
// total (no partial payments); cash payments also carry the amount
// received and the change handed back.
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var req struct {
		OrderID        uint    `json:"order_id" binding:"required"`
		Method         string  `json:"method" binding:"required,oneof=cash credit debit pix app"`
		Amount         float64 `json:"amount" binding:"required,gt=0"`
		AmountReceived float64 `json:"amount_received"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := pc.DB.First(&order, req.OrderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if order.PaymentStatus == "paid" {
		utils.RespondError(c, http.StatusConflict, errors.New("order is already paid"))
		return
	}
	if req.Amount != order.Total {
		utils.RespondError(c, http.StatusUnprocessableEntity, errors.New("amount does not match order total"))
		return
	}

	in := services.PaymentInput{
		OrderID: req.OrderID,
		StaffID: actingUserID(c),
		Method:  req.Method,
		Amount:  req.Amount,
	}
	if req.Method == "cash" {
		if req.AmountReceived < req.Amount {
			utils.RespondError(c, http.StatusUnprocessableEntity, errors.New("amount received is less than the total"))
			return
		}
		in.AmountReceived = req.AmountReceived
		in.Change = req.AmountReceived - req.Amount
	}

	payment, err := pc.Register.ProcessPayment(in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := pc.DB.First(&order, order.ID).Error; err == nil {
		events.BroadcastPaymentUpdate(*payment, order)
	}

	utils.RespondJSON(c, http.StatusCreated, "Payment recorded", payment)
}

// GetPaymentByID -> one payment
func (pc *PaymentController) GetPaymentByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("payment_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payment, err := pc.Register.GetPayment(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment detail", payment)
}

// GetPaymentsByOrder -> all payments recorded against one order
func (pc *PaymentController) GetPaymentsByOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payments, err := pc.Register.ListPaymentsForOrder(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payments for order", payments)
}
