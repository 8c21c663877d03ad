package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartkumbh-http-service/internal/error/response"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/services"
	"smartkumbh-http-service/services/container"
)

// EventController handles spiritual event requests
type EventController struct {
	BaseControllerImpl
}

// NewEventController creates a new spiritual event controller
func NewEventController(ctx *gin.Context, container *container.ServiceContainer) *EventController {
	return &EventController{
		BaseControllerImpl: BaseControllerImpl{
			Container: container,
			Ctx:       ctx,
		},
	}
}

// CreateEventRequest is the event creation payload
type CreateEventRequest struct {
	Name             string    `json:"name" binding:"required" example:"Shipra Maha Aarti"`
	Description      string    `json:"description" example:"Evening lamp offering on the Shipra."`
	Location         string    `json:"location" binding:"required" example:"Ram Ghat"`
	DateTime         time.Time `json:"dateTime" binding:"required" example:"2026-09-01T19:00:00+05:30"`
	DurationMinutes  int       `json:"durationMinutes" binding:"omitempty,min=1" example:"60"`
	Capacity         int       `json:"capacity" binding:"omitempty,min=1" example:"20000"`
	CurrentAttendees int       `json:"currentAttendees" binding:"omitempty,min=0"`
	IsLive           bool      `json:"isLive"`
	ReminderUserIDs  []string  `json:"reminderUserIds"`
}

// HandleEventFunc returns a gin handler for the named event method
func HandleEventFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEventController(ctx, container)

		switch method {
		case "getEvents":
			controller.GetEvents()
		case "createEvent":
			controller.CreateEvent()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// 1. GetEvents lists all spiritual events
// @Summary      List spiritual events
// @Description  Returns every scheduled ritual, aarti and discourse
// @Tags         SpiritualEvents
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /spiritual-events [get]
func (c *EventController) GetEvents() {
	eventService := c.Container.GetService("event").(services.InterfaceEventService)
	response.Success(c.Ctx, eventService.GetAllEvents())
}

// 2. CreateEvent creates a new spiritual event
// @Summary      Create spiritual event
// @Description  Validates and stores a new event; attendance is clamped to capacity
// @Tags         SpiritualEvents
// @Accept       json
// @Produce      json
// @Param        request body CreateEventRequest true "event payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /spiritual-events [post]
func (c *EventController) CreateEvent() {
	var req CreateEventRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	eventService := c.Container.GetService("event").(services.InterfaceEventService)
	event := eventService.CreateEvent(&models.SpiritualEvent{
		Name:             req.Name,
		Description:      req.Description,
		Location:         req.Location,
		DateTime:         req.DateTime,
		DurationMinutes:  req.DurationMinutes,
		Capacity:         req.Capacity,
		CurrentAttendees: req.CurrentAttendees,
		IsLive:           req.IsLive,
		ReminderUserIDs:  req.ReminderUserIDs,
	})
	response.Success(c.Ctx, event)
}
