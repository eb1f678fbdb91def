package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wandersilva5/foodie-hub-api/services"
	"github.com/wandersilva5/foodie-hub-api/utils"
)

// ErrNoPermission is returned when the caller's role does not cover the
// requested operation.
var ErrNoPermission = errors.New("you do not have permission")

// respondServiceError maps service-layer errors onto HTTP status codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrTableNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrSessionClosed):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, services.ErrRegisterAlreadyOpen):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrInsufficientReservedStock),
		errors.Is(err, services.ErrEmptyOrder):
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

func actingUserID(c *gin.Context) uint {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
