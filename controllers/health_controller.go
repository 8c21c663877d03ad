package controllers

import (
	"github.com/gin-gonic/gin"

	"smartkumbh-http-service/internal/error/response"
	"smartkumbh-http-service/services/container"
)

// HandlePingFunc returns the liveness handler
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /ping [get]
func HandlePingFunc(container *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		response.Success(ctx, gin.H{"status": "ok"})
	}
}
