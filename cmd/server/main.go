package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gemi-dot/barangay-ims/internal/config"
	"github.com/gemi-dot/barangay-ims/internal/database"
	"github.com/gemi-dot/barangay-ims/internal/handlers"
	"github.com/gemi-dot/barangay-ims/internal/logger"
	"github.com/gemi-dot/barangay-ims/internal/metrics"
	"github.com/gemi-dot/barangay-ims/internal/middleware"
	"github.com/gemi-dot/barangay-ims/internal/repository"
	"github.com/gemi-dot/barangay-ims/internal/services"
)

const (
	serviceName     = "barangay_ims"
	shutdownTimeout = 30 * time.Second
	dbStatsInterval = 15 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting barangay IMS API", map[string]interface{}{
		"version":     handlers.APIVersion,
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Create database connection pool
	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	log.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Name,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	// Prometheus collector; sample the pool gauge in the background
	collector := metrics.NewCollector(serviceName)
	go func() {
		ticker := time.NewTicker(dbStatsInterval)
		defer ticker.Stop()
		for range ticker.C {
			if stats := db.Stats(); stats != nil {
				collector.DBConnections.Set(float64(stats.TotalConns()))
			}
		}
	}()

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Middleware in order: RequestID -> Logger -> Recovery -> Metrics -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Metrics(collector))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	// Health and operational endpoints
	healthHandler := handlers.NewHealthHandler(db, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Repository layer
	residentRepo := repository.NewResidentRepository(db)
	householdRepo := repository.NewHouseholdRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Service layer
	dashboardService := services.NewDashboardService(residentRepo, householdRepo, reportRepo, log)
	reportService := services.NewReportService(residentRepo, reportRepo, log)
	residentService := services.NewResidentService(residentRepo, log)
	householdService := services.NewHouseholdService(householdRepo, log)
	voterService := services.NewVoterService(residentRepo, log)
	exportService := services.NewExportService(residentRepo, log)

	// Handlers
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)
	residentHandler := handlers.NewResidentHandler(residentService, exportService)
	householdHandler := handlers.NewHouseholdHandler(householdService)
	voterHandler := handlers.NewVoterHandler(voterService, exportService)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/dashboard", dashboardHandler.Summary)

		residents := v1.Group("/residents")
		{
			residents.GET("", residentHandler.Directory)
			residents.GET("/export", residentHandler.DirectoryExport)
		}

		v1.GET("/households", householdHandler.Roster)

		reports := v1.Group("/reports")
		{
			reports.GET("/senior-citizens", reportHandler.SeniorCitizens)
			reports.GET("/businesses", reportHandler.Businesses)
			reports.GET("/4ps", reportHandler.FourPs)
			reports.GET("/pregnancies", reportHandler.Pregnancies)
		}

		voters := v1.Group("/voters")
		{
			voters.GET("", voterHandler.List)
			voters.GET("/by-precinct", voterHandler.ByPrecinct)
			voters.GET("/by-precinct/export", voterHandler.ByPrecinctExport)
			voters.GET("/precinct-totals", voterHandler.PrecinctTotals)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
