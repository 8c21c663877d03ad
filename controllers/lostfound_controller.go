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

// LostFoundController handles lost-and-found case requests
type LostFoundController struct {
	BaseControllerImpl
}

// NewLostFoundController creates a new lost-and-found controller
func NewLostFoundController(ctx *gin.Context, container *container.ServiceContainer) *LostFoundController {
	return &LostFoundController{
		BaseControllerImpl: BaseControllerImpl{
			Container: container,
			Ctx:       ctx,
		},
	}
}

// CreateCaseRequest is the case creation payload
type CreateCaseRequest struct {
	Type             string     `json:"type" binding:"required,oneof=missing_person missing_item found_item found_person" example:"missing_person"`
	Description      string     `json:"description" binding:"required" example:"Elderly man, white kurta, last seen near the aarti."`
	ReporterName     string     `json:"reporterName" example:"Suresh Kumar"`
	ContactInfo      string     `json:"contactInfo" binding:"required" example:"+91-9826000000"`
	LastSeenLocation string     `json:"lastSeenLocation" example:"Ram Ghat"`
	LastSeenTime     *time.Time `json:"lastSeenTime"`
}

// HandleLostFoundFunc returns a gin handler for the named case method
func HandleLostFoundFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewLostFoundController(ctx, container)

		switch method {
		case "getCases":
			controller.GetCases()
		case "createCase":
			controller.CreateCase()
		case "updateCase":
			controller.UpdateCase()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// 1. GetCases lists all lost-and-found cases
// @Summary      List lost-and-found cases
// @Description  Returns every case, active and resolved
// @Tags         LostAndFound
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /lost-found [get]
func (c *LostFoundController) GetCases() {
	lostFoundService := c.Container.GetService("lost_found").(services.InterfaceLostFoundService)
	response.Success(c.Ctx, lostFoundService.GetAllCases())
}

// 2. CreateCase files a new lost-and-found case
// @Summary      File lost-and-found case
// @Description  Validates and stores a new case; status starts active, approval starts false
// @Tags         LostAndFound
// @Accept       json
// @Produce      json
// @Param        request body CreateCaseRequest true "case payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /lost-found [post]
func (c *LostFoundController) CreateCase() {
	var req CreateCaseRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	lostFoundService := c.Container.GetService("lost_found").(services.InterfaceLostFoundService)
	lfCase := lostFoundService.CreateCase(&models.LostAndFoundCase{
		CaseType:         req.Type,
		Description:      req.Description,
		ReporterName:     req.ReporterName,
		ContactInfo:      req.ContactInfo,
		LastSeenLocation: req.LastSeenLocation,
		LastSeenTime:     req.LastSeenTime,
	})
	response.Success(c.Ctx, lfCase)
}

// 3. UpdateCase patches an existing case
// @Summary      Update lost-and-found case
// @Description  Merges the given fields onto a case; a terminal status stamps the resolution time
// @Tags         LostAndFound
// @Accept       json
// @Produce      json
// @Param        id path string true "case id"
// @Param        request body map[string]interface{} true "partial fields"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /lost-found/{id} [patch]
func (c *LostFoundController) UpdateCase() {
	id := c.Ctx.Param("id")

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	lostFoundService := c.Container.GetService("lost_found").(services.InterfaceLostFoundService)
	lfCase, err := lostFoundService.UpdateCase(id, updates)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.NotFound(c.Ctx, "lost-and-found case does not exist")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}
	response.Success(c.Ctx, lfCase)
}
