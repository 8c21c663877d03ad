package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartkumbh-http-service/internal/error/response"
	"smartkumbh-http-service/services"
	"smartkumbh-http-service/services/container"
)

// EmergencyController handles mass-notification and evacuation requests
type EmergencyController struct {
	BaseControllerImpl
}

// NewEmergencyController creates a new emergency controller
func NewEmergencyController(ctx *gin.Context, container *container.ServiceContainer) *EmergencyController {
	return &EmergencyController{
		BaseControllerImpl: BaseControllerImpl{
			Container: container,
			Ctx:       ctx,
		},
	}
}

// BroadcastSMSRequest is the SMS broadcast payload
type BroadcastSMSRequest struct {
	Message string `json:"message" binding:"required" example:"Heavy rain expected near the ghats. Please move to shelter."`
	Area    string `json:"area" example:"Ram Ghat"`
}

// ActivateEvacuationRequest is the evacuation trigger payload
type ActivateEvacuationRequest struct {
	Zone   string `json:"zone" binding:"required" example:"Sector 7"`
	Reason string `json:"reason" binding:"required" example:"Structural damage reported at the footbridge"`
}

// HandleEmergencyFunc returns a gin handler for the named emergency method
func HandleEmergencyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEmergencyController(ctx, container)

		switch method {
		case "broadcastSMS":
			controller.BroadcastSMS()
		case "activateEvacuation":
			controller.ActivateEvacuation()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// 1. BroadcastSMS queues an emergency SMS to all reachable pilgrims
// @Summary      Broadcast emergency SMS
// @Description  Counts reachable recipients and publishes the broadcast to the MQTT bridge when configured
// @Tags         Emergency
// @Accept       json
// @Produce      json
// @Param        request body BroadcastSMSRequest true "broadcast payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /emergency/broadcast-sms [post]
func (c *EmergencyController) BroadcastSMS() {
	var req BroadcastSMSRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	emergencyService := c.Container.GetService("emergency").(services.InterfaceEmergencyService)
	recipients, err := emergencyService.BroadcastSMS(req.Message, req.Area)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, gin.H{"recipients": recipients})
}

// 2. ActivateEvacuation raises a critical evacuation alert for a zone
// @Summary      Activate evacuation
// @Description  Creates a critical safety alert for the zone and publishes the evacuation order
// @Tags         Emergency
// @Accept       json
// @Produce      json
// @Param        request body ActivateEvacuationRequest true "evacuation payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /emergency/activate-evacuation [post]
func (c *EmergencyController) ActivateEvacuation() {
	var req ActivateEvacuationRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	emergencyService := c.Container.GetService("emergency").(services.InterfaceEmergencyService)
	alert, err := emergencyService.ActivateEvacuation(req.Zone, req.Reason)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	response.Success(c.Ctx, alert)
}
