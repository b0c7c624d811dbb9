package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hauskasse/backend/internal/models"
)

// GetHealth reports whether the backend can serve requests.
//
//	@Summary		Health
//	@Description	Returns the health of the backend, including database connectivity
//	@Tags			General
//	@Produce		json
//	@Success		200
//	@Failure		500	{object}	httpError
//	@Router			/healthz [get]
func GetHealth(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: "database is not reachable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
