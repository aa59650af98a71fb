package request

import "barbearia/internal/domain/entities"

type EmployeeRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	Role        string `json:"role" binding:"required"`
	AccessLevel string `json:"access_level"`
}

func (r EmployeeRequest) ToEntity() entities.Employee {
	return entities.Employee{
		Name:        r.Name,
		Email:       r.Email,
		Role:        entities.EmployeeRole(r.Role),
		AccessLevel: entities.AccessLevel(r.AccessLevel),
	}
}
