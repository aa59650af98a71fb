package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"barbearia/internal/domain/entities"
	"barbearia/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCatalogItemNotFound = errors.New("catalog item not found")
	ErrInvalidCatalogID    = errors.New("invalid catalog item id")
)

// CatalogFilter narrows a catalog listing. An empty Category means every category.
type CatalogFilter struct {
	Category entities.CatalogCategory
	Query    string
}

// ICatalogUseCase exposes the stock page: services and products sold at checkout.
type ICatalogUseCase interface {
	Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	Update(ctx context.Context, id string, item entities.CatalogItem) (entities.CatalogItem, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.CatalogItem, error)
	List(ctx context.Context, filter CatalogFilter) ([]entities.CatalogItem, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	item, err := item.Normalize()
	if err != nil {
		return entities.CatalogItem{}, err
	}
	now := time.Now().UTC()
	item.ID = uuid.NewString()
	item.CreatedAt = now
	item.UpdatedAt = now
	return u.repo.Create(ctx, item)
}

func (u *CatalogUseCase) Update(ctx context.Context, id string, item entities.CatalogItem) (entities.CatalogItem, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	item, err = item.Normalize()
	if err != nil {
		return entities.CatalogItem{}, err
	}
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, item)
}

func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func (u *CatalogUseCase) GetByID(ctx context.Context, id string) (entities.CatalogItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogItem{}, ErrInvalidCatalogID
	}
	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if item.ID == "" {
		return entities.CatalogItem{}, ErrCatalogItemNotFound
	}
	return item, nil
}

// List keeps the store order and applies the category and name filters.
func (u *CatalogUseCase) List(ctx context.Context, filter CatalogFilter) ([]entities.CatalogItem, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]entities.CatalogItem, 0, len(items))
	for _, it := range items {
		if filter.Category != "" && it.Category != filter.Category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(it.Name), q) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}
