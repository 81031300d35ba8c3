package handler

import (
	"errors"
	"net/http"

	"embassy-appointment-scheduler/internal/config"
	"embassy-appointment-scheduler/internal/repository"
	"embassy-appointment-scheduler/internal/service"
	"embassy-appointment-scheduler/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
	cfg                *config.Config
	log                *zap.Logger
}

func NewAppointmentHandler(appointmentService *service.AppointmentService, cfg *config.Config, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
		cfg:                cfg,
		log:                log,
	}
}

// Index renders the booking form
func (h *AppointmentHandler) Index(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "", service.CreateAppointmentInput{})
}

// List renders every appointment, most recent slot first
func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.appointmentService.List(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list appointments", zap.Error(err))
		c.String(http.StatusInternalServerError, "An error occurred while loading appointments")
		return
	}

	c.HTML(http.StatusOK, "appointments.html", gin.H{
		"EmbassyName":  h.cfg.App.EmbassyName,
		"Appointments": appointments,
	})
}

// Create books an appointment from the submitted form and redirects to it
func (h *AppointmentHandler) Create(c *gin.Context) {
	var input service.CreateAppointmentInput
	if err := c.ShouldBind(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	id, err := h.appointmentService.Create(c.Request.Context(), input)
	if err != nil {
		var missing *service.MissingFieldError
		var invalid *service.ValidationError
		switch {
		case errors.As(err, &missing):
			utils.ErrorResponse(c, http.StatusBadRequest, missing.Error())
		case errors.As(err, &invalid):
			h.renderForm(c, http.StatusBadRequest, invalid.Reason, input)
		default:
			h.log.Error("error creating appointment", zap.Error(err))
			h.renderForm(c, http.StatusInternalServerError,
				"An error occurred while creating the appointment", service.CreateAppointmentInput{})
		}
		return
	}

	h.log.Info("appointment created",
		zap.String("appointment_id", id),
		zap.String("appointment_date", input.AppointmentDate))

	c.Redirect(http.StatusFound, "/appointments/"+id)
}

// Detail renders a single appointment
func (h *AppointmentHandler) Detail(c *gin.Context) {
	appointment, err := h.appointmentService.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			c.String(http.StatusNotFound, "Appointment not found")
			return
		}
		h.log.Error("failed to fetch appointment", zap.String("appointment_id", c.Param("id")), zap.Error(err))
		c.String(http.StatusInternalServerError, "An error occurred while loading the appointment")
		return
	}

	c.HTML(http.StatusOK, "appointment_detail.html", gin.H{
		"EmbassyName": h.cfg.App.EmbassyName,
		"Appointment": appointment,
	})
}

func (h *AppointmentHandler) renderForm(c *gin.Context, status int, message string, form service.CreateAppointmentInput) {
	c.HTML(status, "index.html", gin.H{
		"EmbassyName":     h.cfg.App.EmbassyName,
		"MedicalRequired": h.cfg.Appointments.MedicalExamRequired,
		"ValidityDays":    h.cfg.Appointments.MedicalExamValidityDays,
		"SlotsPerDay":     h.cfg.Appointments.AvailableSlotsPerDay,
		"Error":           message,
		"Form":            form,
	})
}
