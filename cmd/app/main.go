package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gymdesk/internal/access"
	"gymdesk/internal/attendance"
	"gymdesk/internal/calendar"
	"gymdesk/internal/config"
	"gymdesk/internal/db"
	"gymdesk/internal/discipline"
	"gymdesk/internal/logger"
	"gymdesk/internal/member"
	"gymdesk/internal/membership"
	"gymdesk/internal/pricing"
	"gymdesk/internal/server"
)

// @title GymDesk API
// @version 1.0
// @description Front-desk API for gym memberships, renewals and check-ins.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Setup(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile}); err != nil {
		logger.Fatalf("Failed to configure logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting GymDesk", "port", cfg.Port, "timezone", cfg.GymTimezone, "renewal_policy", cfg.RenewalStartPolicy)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	redisClient := access.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		// Lookups fall back to Postgres while Redis is away.
		logger.Warn("Redis unavailable, member lookups will hit the database", "addr", cfg.RedisAddr, "error", err)
	}
	pingCancel()
	codeCache := access.NewCodeCache(redisClient, cfg.LookupCacheTTL)

	zone, err := calendar.LoadZone(cfg.GymTimezone)
	if err != nil {
		logger.Fatalf("Failed to load timezone: %v", err)
	}

	memberSvc := member.NewService(member.NewRepository(database), codeCache)
	disciplineSvc := discipline.NewService(discipline.NewRepository(database))
	pricingSvc := pricing.NewService(pricing.NewRepository(database), disciplineSvc)
	membershipSvc := membership.NewService(
		membership.NewRepository(database),
		memberSvc,
		disciplineSvc,
		pricingSvc,
		membership.Options{RenewalStartPolicy: cfg.RenewalStartPolicy},
	)
	accessSvc := access.NewService(memberSvc, membershipSvc, codeCache)
	attendanceSvc := attendance.NewService(attendance.NewRepository(database), accessSvc, memberSvc, zone, nil)

	srv := server.New(cfg, server.Handlers{
		Members:     member.NewHandler(memberSvc),
		Disciplines: discipline.NewHandler(disciplineSvc),
		Plans:       pricing.NewHandler(pricingSvc),
		Memberships: membership.NewHandler(membershipSvc),
		Attendance:  attendance.NewHandler(attendanceSvc),
		Access:      access.NewHandler(accessSvc),
	})

	serverErrChan := make(chan error, 1)
	go func() {
		if err := srv.Start(cfg.Port); err != nil {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
