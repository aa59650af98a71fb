package response

import (
	"time"

	"barbearia/internal/domain/entities"
	"barbearia/internal/domain/format"
)

type CatalogItemResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	PriceFormatted string    `json:"price_formatted"`
	Category       string    `json:"category"`
	StockCount     *int      `json:"stock_count,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromCatalogItem(c entities.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Price:          c.Price,
		PriceFormatted: format.FormatBRL(c.Price),
		Category:       string(c.Category),
		StockCount:     c.StockCount,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func FromCatalogItems(items []entities.CatalogItem) []CatalogItemResponse {
	out := make([]CatalogItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromCatalogItem(it))
	}
	return out
}
