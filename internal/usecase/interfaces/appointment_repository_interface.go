package interfaces

import (
	"context"

	"barbearia/internal/domain/entities"
)

// IAppointmentRepository abstracts DynamoDB persistence for Appointment.
//
// Stored service attributes may be absent, a single map or a list of maps;
// implementations resolve that into entities.ServiceSelection on read.
type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	List(ctx context.Context) ([]entities.Appointment, error)
}
