package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartkumbh-http-service/internal/error/response"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/services"
	"smartkumbh-http-service/services/container"
)

// CrowdController handles crowd density requests
type CrowdController struct {
	BaseControllerImpl
}

// NewCrowdController creates a new crowd controller
func NewCrowdController(ctx *gin.Context, container *container.ServiceContainer) *CrowdController {
	return &CrowdController{
		BaseControllerImpl: BaseControllerImpl{
			Container: container,
			Ctx:       ctx,
		},
	}
}

// CreateCrowdDataRequest is the crowd record creation payload
type CreateCrowdDataRequest struct {
	LocationName string  `json:"locationName" binding:"required" example:"Ram Ghat"`
	Latitude     float64 `json:"latitude" binding:"required" example:"23.1793"`
	Longitude    float64 `json:"longitude" binding:"required" example:"75.7849"`
	CrowdCount   int     `json:"crowdCount" binding:"min=0" example:"4200"`
	Capacity     int     `json:"capacity" binding:"required,min=1" example:"6000"`
}

// HandleCrowdFunc returns a gin handler for the named crowd method
func HandleCrowdFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCrowdController(ctx, container)

		switch method {
		case "getCrowdData":
			controller.GetCrowdData()
		case "createCrowdData":
			controller.CreateCrowdData()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// 1. GetCrowdData lists all crowd readings
// @Summary      List crowd data
// @Tags         Crowd
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /crowd-data [get]
func (c *CrowdController) GetCrowdData() {
	crowdService := c.Container.GetService("crowd").(services.InterfaceCrowdService)
	response.Success(c.Ctx, crowdService.GetAllCrowdData())
}

// 2. CreateCrowdData registers a crowd reading for a location
// @Summary      Create crowd reading
// @Description  Derives density level, wait time and status from the occupancy ratio
// @Tags         Crowd
// @Accept       json
// @Produce      json
// @Param        request body CreateCrowdDataRequest true "crowd payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /crowd-data [post]
func (c *CrowdController) CreateCrowdData() {
	var req CreateCrowdDataRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	crowdService := c.Container.GetService("crowd").(services.InterfaceCrowdService)
	data := crowdService.CreateCrowdData(&models.CrowdData{
		LocationName: req.LocationName,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		CrowdCount:   req.CrowdCount,
		Capacity:     req.Capacity,
	})
	response.Success(c.Ctx, data)
}
