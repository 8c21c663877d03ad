package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartkumbh-http-service/internal/error/code"
	"smartkumbh-http-service/internal/error/response"
	"smartkumbh-http-service/services"
	"smartkumbh-http-service/services/container"
)

// JWTController handles admin authentication
type JWTController struct {
	BaseControllerImpl
}

// NewJWTController creates a new JWT controller
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		BaseControllerImpl: BaseControllerImpl{
			Container: container,
			Ctx:       ctx,
		},
	}
}

// LoginRequest is the admin login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// HandleJWTFunc returns a gin handler for the named auth method
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// 1. Login issues a JWT for the admin account
// @Summary      Admin login
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "credentials"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.Authenticate(req.Username, req.Password)
	if err != nil {
		response.Fail(c.Ctx, code.ErrUserPasswordIncorrect, nil)
		return
	}
	response.Success(c.Ctx, gin.H{"token": token})
}
