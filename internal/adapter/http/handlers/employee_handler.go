package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "barbearia/internal/adapter/http/dto/request"
	response "barbearia/internal/adapter/http/dto/response"
	"barbearia/internal/domain/entities"
	"barbearia/internal/usecase"
	"barbearia/pkg"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	usecase usecase.IEmployeeUseCase
}

func NewEmployeeHandler(uc usecase.IEmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{usecase: uc}
}

func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	var role entities.EmployeeRole
	if raw := strings.TrimSpace(c.Query("role")); raw != "" {
		parsed, err := entities.ParseEmployeeRole(raw)
		if err != nil {
			writeError(c, mapEmployeeError(err))
			return
		}
		role = parsed
	}
	employees, err := h.usecase.List(c.Request.Context(), role)
	if err != nil {
		writeError(c, mapEmployeeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEmployees(employees))
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var payload request.EmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapEmployeeError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEmployee(created))
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var payload request.EmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapEmployeeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEmployee(updated))
}

func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapEmployeeError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapEmployeeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmployeeID), errors.Is(err, entities.ErrInvalidEmployee):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidRole):
		return pkg.NewDomainErrorSimple("INVALID_ROLE", "Role must be atendente, barbeiro, gerente or administrador", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidAccessLevel):
		return pkg.NewDomainErrorSimple("INVALID_ACCESS_LEVEL", "Invalid access level", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", "Employee not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
