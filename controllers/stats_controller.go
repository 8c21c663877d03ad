package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartkumbh-http-service/internal/error/response"
	"smartkumbh-http-service/services"
	"smartkumbh-http-service/services/container"
)

// StatsController serves dashboard aggregates
type StatsController struct {
	BaseControllerImpl
}

// NewStatsController creates a new stats controller
func NewStatsController(ctx *gin.Context, container *container.ServiceContainer) *StatsController {
	return &StatsController{
		BaseControllerImpl: BaseControllerImpl{
			Container: container,
			Ctx:       ctx,
		},
	}
}

// HandleStatsFunc returns a gin handler for the named stats method
func HandleStatsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStatsController(ctx, container)

		switch method {
		case "getDashboardStats":
			controller.GetDashboardStats()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// 1. GetDashboardStats returns the admin dashboard totals
// @Summary      Dashboard stats
// @Description  Totals for users, active users, open lost-found cases and active alerts
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /dashboard/stats [get]
func (c *StatsController) GetDashboardStats() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	response.Success(c.Ctx, statsService.GetDashboardStats())
}
