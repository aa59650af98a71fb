package response

import (
	"time"

	"barbearia/internal/domain/entities"
	"barbearia/internal/domain/format"
)

type ServiceResponse struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type AppointmentResponse struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	CustomerName  string            `json:"customer_name"`
	CustomerTaxID string            `json:"customer_tax_id"`
	TaxIDDisplay  string            `json:"customer_tax_id_formatted"`
	Start         time.Time         `json:"start"`
	End           time.Time         `json:"end"`
	ServiceKind   string            `json:"service_kind"`
	Services      []ServiceResponse `json:"services"`
	CreatedAt     time.Time         `json:"created_at"`
}

func FromAppointment(a entities.Appointment) AppointmentResponse {
	items := a.Service.Items()
	services := make([]ServiceResponse, 0, len(items))
	for _, s := range items {
		services = append(services, ServiceResponse{ID: s.ID, Name: s.Name, Price: s.Price})
	}
	return AppointmentResponse{
		ID:            a.ID,
		Title:         a.Title,
		CustomerName:  a.CustomerName,
		CustomerTaxID: a.CustomerTaxID,
		TaxIDDisplay:  format.FormatCPF(a.CustomerTaxID),
		Start:         a.Start,
		End:           a.End,
		ServiceKind:   a.Service.Kind().String(),
		Services:      services,
		CreatedAt:     a.CreatedAt,
	}
}

func FromAppointments(as []entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromAppointment(a))
	}
	return out
}
