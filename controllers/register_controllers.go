package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wandersilva5/foodie-hub-api/events"
	"github.com/wandersilva5/foodie-hub-api/services"
	"github.com/wandersilva5/foodie-hub-api/utils"
)

type RegisterController struct {
	DB       *gorm.DB
	Register *services.RegisterService
}

func NewRegisterController(db *gorm.DB) *RegisterController {
	return &RegisterController{
		DB:       db,
		Register: services.NewRegisterService(db),
	}
}

// OpenSession -> open the cash register with the counted float. Fails
// if a session is already open.
func (rc *RegisterController) OpenSession(c *gin.Context) {
	var req struct {
		OpeningAmount float64 `json:"opening_amount" binding:"gte=0"`
		Notes         string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	session, err := rc.Register.OpenSession(actingUserID(c), req.OpeningAmount, req.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	events.BroadcastRegisterUpdate(*session)
	utils.RespondJSON(c, http.StatusCreated, "Register session opened", session)
}

// CloseSession -> reconcile and close. difference = counted - expected.
func (rc *RegisterController) CloseSession(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("session_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		ActualClosingAmount float64 `json:"actual_closing_amount" binding:"gte=0"`
		Notes               string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	session, err := rc.Register.CloseSession(uint(id), req.ActualClosingAmount, req.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	events.BroadcastRegisterUpdate(*session)
	utils.RespondJSON(c, http.StatusOK, "Register session closed", session)
}

// GetActiveSession -> the open session, or empty data when the register
// is closed
func (rc *RegisterController) GetActiveSession(c *gin.Context) {
	session, err := rc.Register.GetActiveSession()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if session == nil {
		utils.RespondJSON(c, http.StatusOK, "No open register session", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active register session", session)
}

// GetSessions -> session history, newest first
func (rc *RegisterController) GetSessions(c *gin.Context) {
	limit := 30
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	sessions, err := rc.Register.ListSessions(limit)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Register sessions", sessions)
}
