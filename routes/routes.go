package routes

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smartkumbh-http-service/config"
	"smartkumbh-http-service/controllers"
	_ "smartkumbh-http-service/docs"
	"smartkumbh-http-service/internal/app/middleware"
	"smartkumbh-http-service/services"
	"smartkumbh-http-service/services/container"
	"smartkumbh-http-service/storage"
)

// SetupRouter initializes and returns the configured router along with
// the service container backing it
func SetupRouter(store *storage.Store, cfg *config.Config) (*gin.Engine, *container.ServiceContainer) {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// Force UTF-8 JSON responses
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})

	// Report validation errors using json field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}

	serviceContainer := container.NewServiceContainer(store, cfg)
	middleware.InitAuthMiddleware(serviceContainer.GetService("jwt").(services.InterfaceJWTService))

	// Swagger documentation route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r, serviceContainer
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers routes reachable without a token
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// Health check
	api.GET("/ping", controllers.HandlePingFunc(container))

	// Auth routes
	api.POST("/auth/login", controllers.HandleJWTFunc(container, "login"))

	// User routes
	api.GET("/users", controllers.HandleUserFunc(container, "getUsers"))
	api.POST("/users", controllers.HandleUserFunc(container, "createUser"))

	// Safety alert routes
	api.GET("/safety-alerts", controllers.HandleAlertFunc(container, "getAlerts"))
	api.POST("/safety-alerts", controllers.HandleAlertFunc(container, "createAlert"))
	api.PATCH("/safety-alerts/:id", controllers.HandleAlertFunc(container, "updateAlert"))

	// Spiritual event routes
	api.GET("/spiritual-events", controllers.HandleEventFunc(container, "getEvents"))
	api.POST("/spiritual-events", controllers.HandleEventFunc(container, "createEvent"))

	// Lost and found routes
	api.GET("/lost-found", controllers.HandleLostFoundFunc(container, "getCases"))
	api.POST("/lost-found", controllers.HandleLostFoundFunc(container, "createCase"))
	api.PATCH("/lost-found/:id", controllers.HandleLostFoundFunc(container, "updateCase"))

	// Cleanliness report routes
	api.GET("/cleanliness-reports", controllers.HandleCleanlinessFunc(container, "getReports"))
	api.POST("/cleanliness-reports", controllers.HandleCleanlinessFunc(container, "createReport"))
	api.PATCH("/cleanliness-reports/:id", controllers.HandleCleanlinessFunc(container, "updateReport"))

	// Crowd data routes
	api.GET("/crowd-data", controllers.HandleCrowdFunc(container, "getCrowdData"))
	api.POST("/crowd-data", controllers.HandleCrowdFunc(container, "createCrowdData"))

	// Help booth routes
	api.GET("/help-booths", controllers.HandleHelpBoothFunc(container, "getBooths"))
	api.POST("/help-booths", controllers.HandleHelpBoothFunc(container, "createBooth"))
	api.PATCH("/help-booths/:id", controllers.HandleHelpBoothFunc(container, "updateBooth"))

	// Chat log and assistant routes
	api.GET("/chat-messages", controllers.HandleChatFunc(container, "getMessages"))
	api.POST("/chat-messages", controllers.HandleChatFunc(container, "createMessage"))
	api.POST("/chat/ask",
		middleware.CombinedRateLimiter(1, 5),
		controllers.HandleChatFunc(container, "ask"))

	// Dashboard routes
	api.GET("/dashboard/stats", controllers.HandleStatsFunc(container, "getDashboardStats"))
}

// registerAuthenticatedRoutes registers routes requiring an admin token
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateAdmin())

	// Moderation of user accounts (verify, block)
	auth.PATCH("/users/:id", controllers.HandleUserFunc(container, "updateUser"))

	// Emergency routes
	auth.POST("/emergency/broadcast-sms", controllers.HandleEmergencyFunc(container, "broadcastSMS"))
	auth.POST("/emergency/activate-evacuation", controllers.HandleEmergencyFunc(container, "activateEvacuation"))
}
