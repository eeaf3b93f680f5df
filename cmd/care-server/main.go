package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/OdairGSoares/care-idosos-sub000/internal/config"
	"github.com/OdairGSoares/care-idosos-sub000/internal/domain/account"
	"github.com/OdairGSoares/care-idosos-sub000/internal/domain/appointment"
	"github.com/OdairGSoares/care-idosos-sub000/internal/domain/contact"
	"github.com/OdairGSoares/care-idosos-sub000/internal/domain/health"
	"github.com/OdairGSoares/care-idosos-sub000/internal/domain/medication"
	"github.com/OdairGSoares/care-idosos-sub000/internal/domain/refdata"
	"github.com/OdairGSoares/care-idosos-sub000/internal/platform/auth"
	"github.com/OdairGSoares/care-idosos-sub000/internal/platform/db"
	"github.com/OdairGSoares/care-idosos-sub000/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "care-server",
		Short: "Care Idosos API Server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	secret := []byte(cfg.JWTSecret)
	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour

	// Public routes: signup and login only.
	public := e.Group("/api/v1")
	public.Use(middleware.RateLimit(rateLimitCfg))

	// Everything else requires a bearer token.
	api := e.Group("/api/v1")
	api.Use(middleware.RateLimit(rateLimitCfg))
	api.Use(auth.Middleware(secret))

	// Account domain
	accountRepo := account.NewRepoPG(pool)
	accountSvc := account.NewService(accountRepo, secret, tokenTTL, logger)
	accountHandler := account.NewHandler(accountSvc)
	accountHandler.RegisterPublicRoutes(public)
	accountHandler.RegisterRoutes(api)

	// Reference data domain
	doctorRepo := refdata.NewDoctorRepoPG(pool)
	locationRepo := refdata.NewLocationRepoPG(pool)
	refSvc := refdata.NewService(doctorRepo, locationRepo)
	refHandler := refdata.NewHandler(refSvc)
	refHandler.RegisterRoutes(api)

	// Appointment domain
	apptRepo := appointment.NewRepoPG(pool)
	apptSvc := appointment.NewService(apptRepo, refSvc, logger)
	apptHandler := appointment.NewHandler(apptSvc)
	apptHandler.RegisterRoutes(api)

	// Medication domain
	medRepo := medication.NewRepoPG(pool)
	medSvc := medication.NewService(medRepo, logger)
	medHandler := medication.NewHandler(medSvc)
	medHandler.RegisterRoutes(api)

	// Contact domain
	contactRepo := contact.NewRepoPG(pool)
	contactSvc := contact.NewService(contactRepo, logger)
	contactHandler := contact.NewHandler(contactSvc)
	contactHandler.RegisterRoutes(api)

	// Health records domain
	recordRepo := health.NewRepoPG(pool)
	recordSvc := health.NewService(recordRepo, logger)
	recordHandler := health.NewHandler(recordSvc)
	recordHandler.RegisterRoutes(api)

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
