// File: carpool/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carpool/config"
	"carpool/cron"
	"carpool/database"
	groupRepoPkg "carpool/database/repository/group"
	scheduleRepoPkg "carpool/database/repository/schedule"
	userRepoPkg "carpool/database/repository/user"
	vehicleRepoPkg "carpool/database/repository/vehicle"
	"carpool/handlers"
	"carpool/middleware"
	"carpool/routes"
	"carpool/services/group"
	"carpool/services/schedule"
	"carpool/services/user"
	"carpool/services/validation"
	"carpool/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	routes.SetupCORS(router)

	// repositories.
	slotRepo := scheduleRepoPkg.NewMongoScheduleSlotRepo()
	grpRepo := groupRepoPkg.NewMongoGroupRepo()
	vehRepo := vehicleRepoPkg.NewMongoVehicleRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()

	// validation engine.
	validator := validation.NewDefaultValidationService(slotRepo, grpRepo, vehRepo, usrRepo, nil)

	// reminder queue client.
	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer taskClient.Close()

	// services.
	userService := &user.DefaultUserService{Repo: usrRepo}
	groupService := &group.DefaultGroupService{Repo: grpRepo}
	scheduleService := &schedule.DefaultScheduleService{
		Slots:        slotRepo,
		Groups:       grpRepo,
		Vehicles:     vehRepo,
		Users:        usrRepo,
		Validator:    validator,
		TaskClient:   taskClient,
		ReminderLead: time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}

	// background worker: reminders + nightly integrity audit.
	cron.InitScheduleWorker(scheduleService)

	handlerBundle := handlers.NewHandlerBundle(userService, groupService, scheduleService, usrRepo, vehRepo)

	routes.RegisterHealthRoute(router)
	routes.RegisterUserRoutes(router, handlerBundle)
	routes.RegisterGroupRoutes(router, handlerBundle)
	routes.RegisterVehicleRoutes(router, handlerBundle)
	routes.RegisterScheduleRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
