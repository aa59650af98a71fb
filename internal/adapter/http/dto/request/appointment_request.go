package request

import (
	"strings"
	"time"

	"barbearia/internal/usecase"
)

// AppointmentRequest books a slot. Start and End are RFC 3339 timestamps.
type AppointmentRequest struct {
	Title         string    `json:"title"`
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerTaxID string    `json:"customer_tax_id"`
	Start         time.Time `json:"start" binding:"required"`
	End           time.Time `json:"end" binding:"required"`
	ServiceIDs    []string  `json:"service_ids"`
}

func (r AppointmentRequest) ToInput() usecase.AppointmentInput {
	ids := make([]string, 0, len(r.ServiceIDs))
	for _, id := range r.ServiceIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return usecase.AppointmentInput{
		Title:         strings.TrimSpace(r.Title),
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerTaxID: strings.TrimSpace(r.CustomerTaxID),
		Start:         r.Start,
		End:           r.End,
		ServiceIDs:    ids,
	}
}
