package handler

import (
	"standards-hub/backend/common"

	"github.com/gin-gonic/gin"
)

// GetHealth is the liveness probe.
func GetHealth(c *gin.Context) {
	common.RespData(c, gin.H{
		"status":  "OK",
		"message": "Server is running",
	})
}
