package interfaces

import (
	"context"
	"errors"

	"barbearia/internal/domain/entities"
)

// ErrSaleAlreadyCommitted is returned by Commit when a sale with the same ID
// is already stored, i.e. an earlier attempt succeeded.
var ErrSaleAlreadyCommitted = errors.New("sale already committed")

// ISaleRepository abstracts the append-only sale store.
//
// Commit writes the sale and deletes sale.AppointmentID (when set) atomically.
// Sales are never updated or deleted afterwards.
type ISaleRepository interface {
	Commit(ctx context.Context, sale entities.Sale) (entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	List(ctx context.Context) ([]entities.Sale, error)
}
