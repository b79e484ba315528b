package main

import (
	"log"
	"time"

	"lab_dashboard/internal/config"
	"lab_dashboard/internal/database"
	"lab_dashboard/internal/handlers"
	"lab_dashboard/internal/redis"
	"lab_dashboard/internal/repository"
	"lab_dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewServiceOrderRepository(db)
	legacyRepo := repository.NewLegacyOrderRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	orderService := services.NewOrderService(orderRepo, redisClient)
	dashboardService := services.NewDashboardService(orderRepo, legacyRepo, redisClient, time.Duration(cfg.CacheTTL)*time.Second)

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, cfg)
	orderHandler := handlers.NewOrderHandler(orderService, cfg)
	userHandler := handlers.NewUserHandler(userService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.GET("/orders", dashboardHandler.GetOrders)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.POST("/orders", orderHandler.CreateOrder)
		api.PUT("/orders/:id/stages", orderHandler.UpdateStageDates)
		api.PUT("/orders/:id/billing", orderHandler.UpdateBilling)
		api.DELETE("/orders/:id", orderHandler.DeleteOrder)

		api.GET("/dashboard/summary", dashboardHandler.GetSummary)
		api.GET("/dashboard/revenue", dashboardHandler.GetRevenue)
		api.GET("/monitor", dashboardHandler.GetMonitor)

		api.POST("/users", userHandler.CreateUser)
		api.GET("/users", userHandler.GetUsers)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
