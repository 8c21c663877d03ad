package controllers

import (
	"smartkumbh-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// BaseController is the interface every controller satisfies
type BaseController interface {
	// GetContainer returns the service container
	GetContainer() *container.ServiceContainer
	// GetContext returns the gin context
	GetContext() *gin.Context
}

// BaseControllerImpl is the shared controller implementation
type BaseControllerImpl struct {
	Container *container.ServiceContainer
	Ctx       *gin.Context
}

// GetContainer implements BaseController
func (c *BaseControllerImpl) GetContainer() *container.ServiceContainer {
	return c.Container
}

// GetContext implements BaseController
func (c *BaseControllerImpl) GetContext() *gin.Context {
	return c.Ctx
}

// ControllerFactory builds controllers bound to one request context
type ControllerFactory struct {
	Container *container.ServiceContainer
}

// NewControllerFactory creates a new controller factory
func NewControllerFactory(container *container.ServiceContainer) *ControllerFactory {
	return &ControllerFactory{
		Container: container,
	}
}
