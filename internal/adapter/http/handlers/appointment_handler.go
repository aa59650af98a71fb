package handlers

import (
	"errors"
	"net/http"

	request "barbearia/internal/adapter/http/dto/request"
	response "barbearia/internal/adapter/http/dto/response"
	"barbearia/internal/domain/entities"
	"barbearia/internal/usecase"
	"barbearia/pkg"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	appointments, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAppointments(appointments))
}

func (h *AppointmentHandler) UpcomingAppointments(c *gin.Context) {
	appointments, err := h.usecase.Upcoming(c.Request.Context())
	if err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAppointments(appointments))
}

func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAppointment(a))
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromAppointment(created))
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapAppointmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAppointmentID), errors.Is(err, entities.ErrInvalidAppointment):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidAppointmentPeriod):
		return pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_PERIOD", "Appointment start must be before its end", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownService):
		return pkg.NewDomainErrorSimple("UNKNOWN_SERVICE", "Service not found in catalog", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
