package handler

import (
	"fmt"

	"embassy-appointment-scheduler/internal/config"
	"embassy-appointment-scheduler/internal/metrics"
	"embassy-appointment-scheduler/internal/middleware"
	"embassy-appointment-scheduler/internal/service"
	"embassy-appointment-scheduler/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the pages, the appointment endpoints and the operational probes.
func NewRouter(cfg *config.Config, log *zap.Logger, appointmentService *service.AppointmentService, prober Prober) (*gin.Engine, error) {
	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	metricsHandler, err := metrics.Handler(metrics.NewAppointmentCollector(
		appointmentService, cfg.App.Version, cfg.App.Environment))
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(templates)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORS(cfg))

	appointmentHandler := NewAppointmentHandler(appointmentService, cfg, log)
	healthHandler := NewHealthHandler(prober, cfg, log)

	r.GET("/", appointmentHandler.Index)
	r.GET("/appointments", appointmentHandler.List)
	r.POST("/appointments", appointmentHandler.Create)
	r.GET("/appointments/:id", appointmentHandler.Detail)

	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(metricsHandler))

	return r, nil
}
