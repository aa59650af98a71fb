package interfaces

import (
	"context"

	"barbearia/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for the contact list.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}
