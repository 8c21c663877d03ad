package container

import (
	"context"
	"time"

	"smartkumbh-http-service/config"
	"smartkumbh-http-service/services"
	"smartkumbh-http-service/storage"
)

// ServiceContainer wires every service to the shared store and config.
// The store is constructed once at startup and passed in by reference;
// no service reaches for globals.
type ServiceContainer struct {
	store  *storage.Store
	config *config.Config

	// base services
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService
	mqttService  services.InterfaceMQTTService

	// entity services
	userService        services.InterfaceUserService
	alertService       services.InterfaceAlertService
	eventService       services.InterfaceEventService
	lostFoundService   services.InterfaceLostFoundService
	cleanlinessService services.InterfaceCleanlinessService
	crowdService       services.InterfaceCrowdService
	helpBoothService   services.InterfaceHelpBoothService
	chatService        services.InterfaceChatService

	// composite services
	assistantService  services.InterfaceAssistantService
	statsService      services.InterfaceStatsService
	emergencyService  services.InterfaceEmergencyService
	seedService       services.InterfaceSeedService
	simulationService services.InterfaceSimulationService
}

// NewServiceContainer creates the container and initializes all
// services. Redis and MQTT are optional; when unconfigured (or when
// the Redis ping fails) the dependent services run without them.
func NewServiceContainer(store *storage.Store, cfg *config.Config) *ServiceContainer {
	if store == nil {
		panic("store is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	c := &ServiceContainer{
		store:  store,
		config: cfg,
	}
	c.initializeServices()
	return c
}

// initializeServices builds every service in dependency order.
func (c *ServiceContainer) initializeServices() {
	c.jwtService = services.NewJWTService(c.config)

	if c.config.RedisEnabled() {
		redisService := services.NewRedisService(c.config)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisService.Client.Ping(ctx).Err()
		cancel()
		if err != nil {
			config.Warning("Redis ping failed: %v, continuing without cache", err)
		} else {
			c.redisService = redisService
		}
	}

	c.mqttService = services.NewMQTTService(c.config)
	if err := c.mqttService.Connect(); err != nil {
		config.Warning("MQTT connect failed: %v, continuing without broker", err)
	}

	c.userService = services.NewUserService(c.store, c.config)
	c.alertService = services.NewAlertService(c.store, c.config)
	c.eventService = services.NewEventService(c.store, c.config)
	c.lostFoundService = services.NewLostFoundService(c.store, c.config)
	c.cleanlinessService = services.NewCleanlinessService(c.store, c.config)
	c.crowdService = services.NewCrowdService(c.store, c.config)
	c.helpBoothService = services.NewHelpBoothService(c.store, c.config)

	c.assistantService = services.NewAssistantService(c.config)
	c.chatService = services.NewChatService(c.store, c.config, c.assistantService)
	c.statsService = services.NewStatsService(c.store, c.config, c.redisService)
	c.emergencyService = services.NewEmergencyService(c.store, c.config, c.alertService, c.mqttService)

	var marker services.SeedMarker
	if c.redisService != nil {
		marker = &services.RedisSeedMarker{Redis: c.redisService}
	} else {
		marker = &services.FileSeedMarker{Path: c.config.SeedMarkerPath}
	}
	c.seedService = services.NewSeedService(
		c.store, c.config, marker,
		c.userService, c.crowdService, c.eventService, c.alertService,
		c.lostFoundService, c.cleanlinessService, c.helpBoothService,
	)

	c.simulationService = services.NewSimulationService(
		c.store, c.config,
		c.crowdService, c.eventService, c.alertService, c.lostFoundService,
		c.mqttService,
	)
}

// GetService returns the service registered under the given name.
func (c *ServiceContainer) GetService(name string) interface{} {
	switch name {
	case "config":
		return c.config
	case "store":
		return c.store
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "mqtt":
		return c.mqttService
	case "user":
		return c.userService
	case "alert":
		return c.alertService
	case "event":
		return c.eventService
	case "lost_found":
		return c.lostFoundService
	case "cleanliness":
		return c.cleanlinessService
	case "crowd":
		return c.crowdService
	case "help_booth":
		return c.helpBoothService
	case "chat":
		return c.chatService
	case "assistant":
		return c.assistantService
	case "stats":
		return c.statsService
	case "emergency":
		return c.emergencyService
	case "seed":
		return c.seedService
	case "simulation":
		return c.simulationService
	default:
		return nil
	}
}

// GetStore returns the shared entity store.
func (c *ServiceContainer) GetStore() *storage.Store {
	return c.store
}

// Shutdown tears the process-wide lifecycle down: simulation timers
// first, then external connections.
func (c *ServiceContainer) Shutdown() {
	c.simulationService.Stop()
	c.mqttService.Disconnect()
}
