package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wandersilva5/foodie-hub-api/events"
	"github.com/wandersilva5/foodie-hub-api/models"
	"github.com/wandersilva5/foodie-hub-api/utils"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// CreateNotification -> push a notice to a staff role
func (nc *NotificationController) CreateNotification(c *gin.Context) {
	var req struct {
		Role  string `json:"role" binding:"required"`
		Title string `json:"title" binding:"required"`
		Body  string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	notification := models.Notification{
		Role:  req.Role,
		Title: req.Title,
		Body:  req.Body,
	}
	if err := nc.DB.Create(&notification).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastStaffNotification(notification.Title)

	utils.RespondJSON(c, http.StatusCreated, "Notification created", notification)
}

// GetNotifications -> unread first, filtered by the caller's role
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	role, _ := c.Get("role")

	var notifications []models.Notification
	q := nc.DB.Order("`read` ASC, created_at DESC").Limit(50)
	if role != "admin" {
		q = q.Where("role = ?", role)
	}
	if err := q.Find(&notifications).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notifications", notifications)
}

// MarkNotificationRead
func (nc *NotificationController) MarkNotificationRead(c *gin.Context) {
	notificationID := c.Param("notification_id")

	var notification models.Notification
	if err := nc.DB.First(&notification, notificationID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	notification.Read = true
	if err := nc.DB.Save(&notification).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notification marked as read", notification)
}
