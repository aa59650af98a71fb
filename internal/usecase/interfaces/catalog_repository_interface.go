package interfaces

import (
	"context"

	"barbearia/internal/domain/entities"
)

// ICatalogRepository abstracts DynamoDB persistence for CatalogItem.
//
// GetByID returns a zero-value item (empty ID) when nothing is stored under id.
type ICatalogRepository interface {
	Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	Update(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.CatalogItem, error)
	List(ctx context.Context) ([]entities.CatalogItem, error)
}
