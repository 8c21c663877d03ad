package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartkumbh-http-service/internal/error/code"
	"smartkumbh-http-service/internal/error/response"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/services"
	"smartkumbh-http-service/services/container"
	"smartkumbh-http-service/storage"
)

// AlertController handles safety alert requests
type AlertController struct {
	BaseControllerImpl
}

// NewAlertController creates a new safety alert controller
func NewAlertController(ctx *gin.Context, container *container.ServiceContainer) *AlertController {
	return &AlertController{
		BaseControllerImpl: BaseControllerImpl{
			Container: container,
			Ctx:       ctx,
		},
	}
}

// CreateAlertRequest is the alert creation payload
type CreateAlertRequest struct {
	Title         string     `json:"title" binding:"required" example:"Heat advisory"`
	Message       string     `json:"message" binding:"required" example:"Temperatures above 40C expected."`
	Type          string     `json:"type" binding:"required,oneof=weather crowd medical infrastructure network announcement" example:"weather"`
	Priority      string     `json:"priority" binding:"required,oneof=low medium high critical" example:"high"`
	Location      string     `json:"location" example:"Ram Ghat"`
	AffectedAreas []string   `json:"affectedAreas"`
	Duration      string     `json:"duration" example:"2 hours"`
	IsActive      *bool      `json:"isActive"`
	ExpiresAt     *time.Time `json:"expiresAt"`
}

// HandleAlertFunc returns a gin handler for the named alert method
func HandleAlertFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAlertController(ctx, container)

		switch method {
		case "getAlerts":
			controller.GetAlerts()
		case "createAlert":
			controller.CreateAlert()
		case "updateAlert":
			controller.UpdateAlert()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// 1. GetAlerts lists all safety alerts
// @Summary      List safety alerts
// @Description  Returns every safety alert, active and inactive
// @Tags         SafetyAlerts
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /safety-alerts [get]
func (c *AlertController) GetAlerts() {
	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)
	response.Success(c.Ctx, alertService.GetAllAlerts())
}

// 2. CreateAlert creates a new safety alert
// @Summary      Create safety alert
// @Description  Validates the payload and stores a new alert; isActive defaults to true
// @Tags         SafetyAlerts
// @Accept       json
// @Produce      json
// @Param        request body CreateAlertRequest true "alert payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /safety-alerts [post]
func (c *AlertController) CreateAlert() {
	var req CreateAlertRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)
	alert := alertService.CreateAlert(&models.SafetyAlert{
		Title:         req.Title,
		Message:       req.Message,
		Type:          req.Type,
		Priority:      req.Priority,
		Location:      req.Location,
		AffectedAreas: req.AffectedAreas,
		Duration:      req.Duration,
		IsActive:      isActive,
		ExpiresAt:     req.ExpiresAt,
	})
	response.Success(c.Ctx, alert)
}

// 3. UpdateAlert patches an existing safety alert
// @Summary      Update safety alert
// @Description  Merges the given fields onto an alert; enumerated fields are re-validated when present
// @Tags         SafetyAlerts
// @Accept       json
// @Produce      json
// @Param        id path string true "alert id"
// @Param        request body map[string]interface{} true "partial fields"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /safety-alerts/{id} [patch]
func (c *AlertController) UpdateAlert() {
	id := c.Ctx.Param("id")

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)
	alert, err := alertService.UpdateAlert(id, updates)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.NotFound(c.Ctx, "safety alert does not exist")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}
	response.Success(c.Ctx, alert)
}
