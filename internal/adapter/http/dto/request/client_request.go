package request

import "barbearia/internal/domain/entities"

type ClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{Name: r.Name, Email: r.Email, Phone: r.Phone}
}
