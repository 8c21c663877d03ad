// @title           SmartKumbh HTTP Service API
// @version         1.0
// @description     Pilgrim portal backend for the Ujjain Simhastha with crowd density, safety alerts, lost and found, spiritual events, cleanliness reports, help booths and a pilgrim assistant
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@smartkumbh.example

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"smartkumbh-http-service/config"
	"smartkumbh-http-service/routes"
	"smartkumbh-http-service/services"
	"smartkumbh-http-service/storage"
)

func main() {
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	// Load the .env file; environment variables may already be set
	// some other way, so a missing file is not fatal
	if err := godotenv.Load(); err != nil {
		config.Warning("could not load .env file: %v", err)
	} else {
		config.Info("loaded .env file")
	}

	cfg := config.GetConfig()

	store := storage.NewStore()

	// Optional on-disk mirror keeps a queryable copy of every
	// collection for operators without access to the live API
	stopMirror := func() {}
	if cfg.MirrorDBPath != "" {
		mirror, err := storage.OpenMirror(cfg.MirrorDBPath)
		if err != nil {
			config.Error("could not open local mirror: %v", err)
			os.Exit(1)
		}
		stopMirror = startMirrorSync(store, mirror)
		config.Info("local mirror enabled at %s", cfg.MirrorDBPath)
	}

	r, serviceContainer := routes.SetupRouter(store, cfg)

	// Seed demo data once; the marker guard makes restarts no-ops
	seedService := serviceContainer.GetService("seed").(services.InterfaceSeedService)
	if err := seedService.Seed(); err != nil {
		config.Error("seeding failed: %v", err)
		os.Exit(1)
	}

	if cfg.SimulationEnabled {
		simService := serviceContainer.GetService("simulation").(services.InterfaceSimulationService)
		simService.Start()
		config.Info("live data simulation started")
	}

	port := cfg.ServerPort
	if port == "" {
		port = "8080"
	}

	go func() {
		config.Info("server listening on http://localhost:%s", port)
		if err := r.Run(":" + port); err != nil {
			config.Error("server failed: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	config.Info("shutting down")
	serviceContainer.Shutdown()
	stopMirror()
}

// startMirrorSync copies every store mutation into the mirror and
// returns a stop function
func startMirrorSync(store *storage.Store, mirror *storage.MirrorStore) func() {
	events, cancel := store.Hub.Subscribe("")
	done := make(chan struct{})

	go func() {
		defer close(done)
		for ev := range events {
			entity, ok := ev.Record.(storage.Entity)
			if !ok {
				continue
			}
			if err := mirror.Put(ev.Collection, entity.EntityID(), ev.Record); err != nil {
				config.Warning("mirror write failed for %s/%s: %v", ev.Collection, entity.EntityID(), err)
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
