package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"embassy-appointment-scheduler/internal/config"
	"embassy-appointment-scheduler/internal/database"
	"embassy-appointment-scheduler/internal/handler"
	"embassy-appointment-scheduler/internal/repository"
	"embassy-appointment-scheduler/internal/service"
	"embassy-appointment-scheduler/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "embassy-scheduler"

func main() {
	rootCmd := &cobra.Command{
		Use:   serviceName,
		Short: "Visa interview appointment scheduling server",
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
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the appointments table if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := database.Connect(cfg, log)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := repository.NewAppointmentRepo(db).Initialize(cmd.Context()); err != nil {
				return err
			}
			log.Info("schema is up to date")
			return nil
		},
	}
}

func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, serviceName)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	return cfg, log, nil
}

func runServer() error {
	// 1. Load configuration and logger
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()
	log.Info("configuration loaded",
		zap.String("environment", cfg.App.Environment),
		zap.String("version", cfg.App.Version),
		zap.Bool("medical_exam_required", cfg.Appointments.MedicalExamRequired),
		zap.Int("medical_exam_validity_days", cfg.Appointments.MedicalExamValidityDays))

	// 2. Initialize database connection and schema
	db, err := database.Connect(cfg, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	appointmentRepo := repository.NewAppointmentRepo(db)
	if err := appointmentRepo.Initialize(context.Background()); err != nil {
		return err
	}

	// 3. Initialize services
	appointmentService := service.NewAppointmentService(appointmentRepo, cfg.Appointments)

	// 4. Setup router
	if cfg.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r, err := handler.NewRouter(cfg, log, appointmentService, appointmentRepo)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 5. Serve until interrupted
	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-quit:
		log.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server exited")
	return nil
}
