package request

import (
	"strings"

	"barbearia/internal/domain/entities"
)

type CatalogItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category" binding:"required"`
	StockCount  *int    `json:"stock_count"`
}

func (r CatalogItemRequest) ToEntity() (entities.CatalogItem, error) {
	category, err := entities.ParseCatalogCategory(r.Category)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	return entities.CatalogItem{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Price:       r.Price,
		Category:    category,
		StockCount:  r.StockCount,
	}, nil
}
