package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/expomadeinworld/preference-service/internal/api"
	"github.com/expomadeinworld/preference-service/internal/config"
	"github.com/expomadeinworld/preference-service/internal/db"
	"github.com/expomadeinworld/preference-service/internal/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	log.Printf("Preference Service starting (env=%s)", cfg.Environment)

	// Initialize the document store (non-fatal; validators treat a dead
	// store as "invalid" and the process still serves /live)
	database, err := db.NewDatabase(cfg)
	if err != nil {
		log.Printf("[WARN] Document store initialization failed at startup: %v", err)
	}
	if database != nil {
		defer database.Close()
	}

	forwarder := logging.NewNewRelicForwarder(cfg.NewRelicLogURL, cfg.NewRelicLicenseKey)
	if !forwarder.Enabled() {
		log.Println("New Relic log forwarding disabled (endpoint or key not configured)")
	}

	var store api.Store
	if database != nil {
		store = database
	}
	handler := api.NewHandler(store, forwarder, cfg.Environment)

	router := setupRouter(handler, database)

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}

func setupRouter(handler *api.Handler, database *db.Database) *gin.Engine {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(logging.JSONLogger())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
	}))

	// Health and readiness endpoints
	router.GET("/live", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/ready", func(c *gin.Context) {
		if database == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		if err := database.Health(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	router.GET("/health", handler.Health)

	// The same API is exposed under the production and dev prefixes and at
	// the bare root; behavior is identical on all three.
	api.RegisterRoutes(router.Group("/api"), handler)
	api.RegisterRoutes(router.Group("/dev/api"), handler)
	api.RegisterRoutes(router, handler)

	// Root endpoint for basic info
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "preference-service",
			"version": "1.0.0",
			"status":  "running",
		})
	})

	return router
}
