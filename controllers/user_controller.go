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

// UserController handles pilgrim and admin account requests
type UserController struct {
	BaseControllerImpl
}

// NewUserController creates a new user controller
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		BaseControllerImpl: BaseControllerImpl{
			Container: container,
			Ctx:       ctx,
		},
	}
}

// CreateUserRequest is the registration payload
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required" example:"Ramesh Sharma"`
	Email string `json:"email" binding:"omitempty,email" example:"ramesh@example.com"`
	Phone string `json:"phone" example:"+91-9826000000"`
	Role  string `json:"role" binding:"omitempty,oneof=pilgrim admin" example:"pilgrim"`
}

// HandleUserFunc returns a gin handler for the named user method
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "getUsers":
			controller.GetUsers()
		case "createUser":
			controller.CreateUser()
		case "updateUser":
			controller.UpdateUser()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// 1. GetUsers lists all users
// @Summary      List users
// @Description  Returns every registered pilgrim and admin account
// @Tags         Users
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /users [get]
func (c *UserController) GetUsers() {
	userService := c.Container.GetService("user").(services.InterfaceUserService)
	response.Success(c.Ctx, userService.GetAllUsers())
}

// 2. CreateUser registers a new user
// @Summary      Register user
// @Description  Registers a pilgrim or admin account and assigns the public QR identifier
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request body CreateUserRequest true "registration payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /users [post]
func (c *UserController) CreateUser() {
	var req CreateUserRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user := userService.CreateUser(&models.User{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  req.Role,
	})
	response.Success(c.Ctx, user)
}

// 3. UpdateUser patches an existing user
// @Summary      Update user
// @Description  Merges the given fields onto a user; list fields are replaced wholesale
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        id path string true "user id"
// @Param        request body map[string]interface{} true "partial fields"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [patch]
// @Security     BearerAuth
func (c *UserController) UpdateUser() {
	id := c.Ctx.Param("id")

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.UpdateUser(id, updates)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.NotFound(c.Ctx, "user does not exist")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}
	response.Success(c.Ctx, user)
}
