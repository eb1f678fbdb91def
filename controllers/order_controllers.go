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

type OrderController struct {
	DB     *gorm.DB
	Orders *services.OrderService
	Ledger *services.InventoryService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:     db,
		Orders: services.NewOrderService(db),
		Ledger: services.NewInventoryService(db),
	}
}

// CreateOrder -> place an order. Items are priced from the catalog and
// stock is reserved; a dine-in table becomes occupied.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type ItemReq struct {
		ProductID    uint   `json:"product_id" binding:"required"`
		Quantity     int    `json:"quantity" binding:"required,gt=0"`
		Observations string `json:"observations"`
	}

	var body struct {
		TableID         *uint     `json:"table_id"`
		CustomerName    string    `json:"customer_name"`
		IsDelivery      bool      `json:"is_delivery"`
		DeliveryAddress string    `json:"delivery_address"`
		Items           []ItemReq `json:"items" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	in := services.OrderInput{
		TableID:         body.TableID,
		CustomerName:    body.CustomerName,
		IsDelivery:      body.IsDelivery,
		DeliveryAddress: body.DeliveryAddress,
	}
	for _, it := range body.Items {
		in.Items = append(in.Items, services.OrderItemInput{
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			Observations: it.Observations,
		})
	}

	order, err := oc.Orders.CreateOrder(in, actingUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	events.BroadcastOrderCreate(*order)

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetAllOrders -> list orders with their items, newest first
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Orders.ListOrders(c.Query("status"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> one order with items
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.GetOrder(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus -> drive the order lifecycle. Terminal orders
// (delivered/canceled) reject any change; inventory and table side
// effects fire with the transition.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.UpdateOrderStatus(uint(id), body.Status, actingUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	events.BroadcastOrderUpdate(*order)
	if order.TableID != nil && order.Status == "delivered" {
		var table models.Table
		if err := oc.DB.First(&table, *order.TableID).Error; err == nil {
			events.BroadcastTableUpdate(table)
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// GetKitchenQueue -> pending/preparing orders, oldest first
func (oc *OrderController) GetKitchenQueue(c *gin.Context) {
	orders, err := oc.Orders.ListKitchenQueue()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Kitchen queue", orders)
}

// GetCheckoutQueue -> delivered orders still waiting for payment
func (oc *OrderController) GetCheckoutQueue(c *gin.Context) {
	orders, err := oc.Orders.ListUnpaidDelivered()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Checkout queue", orders)
}
