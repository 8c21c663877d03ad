package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartkumbh-http-service/internal/error/code"
	"smartkumbh-http-service/internal/error/response"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/services"
	"smartkumbh-http-service/services/container"
	"smartkumbh-http-service/storage"
)

// HelpBoothController handles help booth requests
type HelpBoothController struct {
	BaseControllerImpl
}

// NewHelpBoothController creates a new help booth controller
func NewHelpBoothController(ctx *gin.Context, container *container.ServiceContainer) *HelpBoothController {
	return &HelpBoothController{
		BaseControllerImpl: BaseControllerImpl{
			Container: container,
			Ctx:       ctx,
		},
	}
}

// CreateBoothRequest is the booth creation payload
type CreateBoothRequest struct {
	Name          string   `json:"name" binding:"required" example:"Ram Ghat Help Center"`
	Location      string   `json:"location" binding:"required" example:"Near Ram Ghat main entrance"`
	Latitude      float64  `json:"latitude" example:"23.1793"`
	Longitude     float64  `json:"longitude" example:"75.7849"`
	Staff         []string `json:"staff"`
	Services      []string `json:"services" example:"lost_found,medical"`
	ContactNumber string   `json:"contactNumber" example:"+91-734-2550000"`
	IsActive      *bool    `json:"isActive"`
}

// HandleHelpBoothFunc returns a gin handler for the named booth method
func HandleHelpBoothFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHelpBoothController(ctx, container)

		switch method {
		case "getBooths":
			controller.GetBooths()
		case "createBooth":
			controller.CreateBooth()
		case "updateBooth":
			controller.UpdateBooth()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// 1. GetBooths lists all help booths
// @Summary      List help booths
// @Tags         HelpBooths
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /help-booths [get]
func (c *HelpBoothController) GetBooths() {
	boothService := c.Container.GetService("help_booth").(services.InterfaceHelpBoothService)
	response.Success(c.Ctx, boothService.GetAllBooths())
}

// 2. CreateBooth registers a new help booth
// @Summary      Create help booth
// @Tags         HelpBooths
// @Accept       json
// @Produce      json
// @Param        request body CreateBoothRequest true "booth payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /help-booths [post]
func (c *HelpBoothController) CreateBooth() {
	var req CreateBoothRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	boothService := c.Container.GetService("help_booth").(services.InterfaceHelpBoothService)
	booth := boothService.CreateBooth(&models.HelpBooth{
		Name:          req.Name,
		Location:      req.Location,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Staff:         req.Staff,
		Services:      req.Services,
		ContactNumber: req.ContactNumber,
		IsActive:      isActive,
	})
	response.Success(c.Ctx, booth)
}

// 3. UpdateBooth patches an existing help booth
// @Summary      Update help booth
// @Description  Merges the given fields onto a booth; staff and services lists are replaced wholesale
// @Tags         HelpBooths
// @Accept       json
// @Produce      json
// @Param        id path string true "booth id"
// @Param        request body map[string]interface{} true "partial fields"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /help-booths/{id} [patch]
func (c *HelpBoothController) UpdateBooth() {
	id := c.Ctx.Param("id")

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	boothService := c.Container.GetService("help_booth").(services.InterfaceHelpBoothService)
	booth, err := boothService.UpdateBooth(id, updates)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.NotFound(c.Ctx, "help booth does not exist")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}
	response.Success(c.Ctx, booth)
}
