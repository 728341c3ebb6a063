package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mkaraca/task-tracker-api/internal/config"
	"github.com/mkaraca/task-tracker-api/internal/database"
	"github.com/mkaraca/task-tracker-api/internal/handlers"
	"github.com/mkaraca/task-tracker-api/internal/middleware"
	"github.com/mkaraca/task-tracker-api/internal/repository"
	"github.com/mkaraca/task-tracker-api/internal/services"
)

func main() {
	// Load .env if present, then configuration from the environment
	_ = godotenv.Load()
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Wire repositories and services
	taskRepo := repository.NewTaskRepository(database.GetDB())
	userRepo := repository.NewUserRepository(database.GetDB())

	// Seed the default team on first start
	if err := database.SeedUsers(userRepo); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	taskService := services.NewTaskService(taskRepo, userRepo)

	// Initialize handlers
	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(taskService)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.CORS(cfg.AllowOrigin))

	// Health check endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "Task Tracker API is running",
		})
	})

	// API routes
	r.GET("/users", userHandler.ListUsers)
	r.GET("/tasks", taskHandler.ListTasks)
	r.POST("/tasks", taskHandler.CreateTask)
	r.PATCH("/tasks/:id", taskHandler.UpdateTask)
	r.DELETE("/tasks/:id", taskHandler.DeleteTask)

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
