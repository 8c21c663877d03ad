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

// CleanlinessController handles facility feedback requests
type CleanlinessController struct {
	BaseControllerImpl
}

// NewCleanlinessController creates a new cleanliness controller
func NewCleanlinessController(ctx *gin.Context, container *container.ServiceContainer) *CleanlinessController {
	return &CleanlinessController{
		BaseControllerImpl: BaseControllerImpl{
			Container: container,
			Ctx:       ctx,
		},
	}
}

// CreateReportRequest is the report creation payload
type CreateReportRequest struct {
	Location     string `json:"location" binding:"required" example:"Ram Ghat toilet block A"`
	FacilityType string `json:"facilityType" binding:"required,oneof=toilet ghat road dustbin water_station" example:"toilet"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5" example:"2"`
	Feedback     string `json:"feedback" example:"Needs water refill and cleaning."`
}

// HandleCleanlinessFunc returns a gin handler for the named report method
func HandleCleanlinessFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCleanlinessController(ctx, container)

		switch method {
		case "getReports":
			controller.GetReports()
		case "createReport":
			controller.CreateReport()
		case "updateReport":
			controller.UpdateReport()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// 1. GetReports lists all cleanliness reports
// @Summary      List cleanliness reports
// @Tags         Cleanliness
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /cleanliness-reports [get]
func (c *CleanlinessController) GetReports() {
	cleanlinessService := c.Container.GetService("cleanliness").(services.InterfaceCleanlinessService)
	response.Success(c.Ctx, cleanlinessService.GetAllReports())
}

// 2. CreateReport files a new cleanliness report
// @Summary      File cleanliness report
// @Description  Validates the star rating (1-5) and stores the report
// @Tags         Cleanliness
// @Accept       json
// @Produce      json
// @Param        request body CreateReportRequest true "report payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /cleanliness-reports [post]
func (c *CleanlinessController) CreateReport() {
	var req CreateReportRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	cleanlinessService := c.Container.GetService("cleanliness").(services.InterfaceCleanlinessService)
	report := cleanlinessService.CreateReport(&models.CleanlinessReport{
		Location:     req.Location,
		FacilityType: req.FacilityType,
		Rating:       req.Rating,
		Feedback:     req.Feedback,
	})
	response.Success(c.Ctx, report)
}

// 3. UpdateReport patches an existing report
// @Summary      Update cleanliness report
// @Description  Merges the given fields; isResolved true stamps the resolution time
// @Tags         Cleanliness
// @Accept       json
// @Produce      json
// @Param        id path string true "report id"
// @Param        request body map[string]interface{} true "partial fields"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /cleanliness-reports/{id} [patch]
func (c *CleanlinessController) UpdateReport() {
	id := c.Ctx.Param("id")

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	cleanlinessService := c.Container.GetService("cleanliness").(services.InterfaceCleanlinessService)
	report, err := cleanlinessService.UpdateReport(id, updates)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.NotFound(c.Ctx, "cleanliness report does not exist")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}
	response.Success(c.Ctx, report)
}
