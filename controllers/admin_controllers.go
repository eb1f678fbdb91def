package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wandersilva5/foodie-hub-api/models"
	"github.com/wandersilva5/foodie-hub-api/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats -> counts and totals for the admin dashboard
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	stats := ac.collectStats()
	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}

func (ac *AdminController) collectStats() gin.H {
	var orderCounts []struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	ac.DB.Model(&models.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&orderCounts)

	startOfDay := time.Now().Truncate(24 * time.Hour)

	var revenueToday float64
	ac.DB.Model(&models.Payment{}).
		Where("status = ? AND created_at >= ?", "completed", startOfDay).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenueToday)

	var occupiedTables int64
	ac.DB.Model(&models.Table{}).
		Where("status = ?", "occupied").
		Count(&occupiedTables)

	var lowStock int64
	ac.DB.Model(&models.Product{}).
		Where("stock_management = ? AND stock_quantity <= ?", true, 5).
		Count(&lowStock)

	var openSessions int64
	ac.DB.Model(&models.RegisterSession{}).
		Where("status = ?", "open").
		Count(&openSessions)

	return gin.H{
		"orders_by_status":   orderCounts,
		"revenue_today":      revenueToday,
		"occupied_tables":    occupiedTables,
		"low_stock_products": lowStock,
		"register_open":      openSessions > 0,
	}
}
