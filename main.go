package main

import (
	"log"
	"net/http"

	"github.com/denavigator/Brand-app/config"
	"github.com/denavigator/Brand-app/controllers"
	"github.com/denavigator/Brand-app/models"
	"github.com/denavigator/Brand-app/services"
	"github.com/denavigator/Brand-app/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Basic logging
	log.Println("Starting Brand App server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Upload and template directories must exist before the first checkout
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("Failed to prepare directories: %v", err)
	}
	utils.UploadDir = cfg.UploadDir

	// Connect to the order store backend
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if db := config.GetDB(); db != nil {
		if err := db.AutoMigrate(&models.Order{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		log.Println("Database migration completed successfully")
	}
	if _, err := services.InitOrderStore(); err != nil {
		log.Fatalf("Failed to initialize order store: %v", err)
	}

	services.InitCheckoutService(cfg)
	services.InitMockupService(cfg.TemplateDir, cfg.UploadDir)
	if _, err := services.InitS3Service(); err != nil {
		log.Fatalf("Failed to initialize S3 mirror: %v", err)
	}

	router := setupRouter()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the Gin engine with all routes registered
func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.LoadHTMLGlob("views/*.html")

	// Marketing pages
	router.GET("/", controllers.Home)
	router.GET("/how", controllers.HowItWorks)
	router.GET("/packages", controllers.Packages)
	router.GET("/order", controllers.OrderForm)
	router.GET("/about", controllers.About)

	// Order intake and follow-up
	router.POST("/checkout", controllers.Checkout)
	router.GET("/confirmation", controllers.Confirmation)
	router.GET("/admin", controllers.Admin)
	router.GET("/uploads/:filename", controllers.GetUploadedImage)

	// Health check endpoint
	router.GET("/health", healthCheck)

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Brand App is running",
	})
}
