package entities

import (
	"errors"
	"strings"
	"time"
)

// CatalogCategory separates bookable services from stocked products.
type CatalogCategory string

const (
	CatalogCategoryServico CatalogCategory = "servico"
	CatalogCategoryProduto CatalogCategory = "produto"
)

var (
	ErrInvalidCatalogItem = errors.New("invalid catalog item")
	ErrInvalidCategory    = errors.New("invalid catalog category")
	ErrInvalidStockCount  = errors.New("stock count is required for products and must not be negative")
)

// CatalogItem is a purchasable service or stocked product.
//
// Storage model (DynamoDB):
//   - PK: id
//
// StockCount is only meaningful for products; services never carry one.
type CatalogItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Category    CatalogCategory `json:"category"`
	StockCount  *int            `json:"stock_count,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func ParseCatalogCategory(s string) (CatalogCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "servico", "serviço", "service":
		return CatalogCategoryServico, nil
	case "produto", "product":
		return CatalogCategoryProduto, nil
	}
	return "", ErrInvalidCategory
}

// Normalize enforces the category/stock invariant: services drop any stock
// count, products must have a non-negative one.
func (c CatalogItem) Normalize() (CatalogItem, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	if c.Name == "" || c.Price < 0 {
		return CatalogItem{}, ErrInvalidCatalogItem
	}

	switch c.Category {
	case CatalogCategoryServico:
		c.StockCount = nil
	case CatalogCategoryProduto:
		if c.StockCount == nil || *c.StockCount < 0 {
			return CatalogItem{}, ErrInvalidStockCount
		}
	default:
		return CatalogItem{}, ErrInvalidCategory
	}
	return c, nil
}

// AsCartLine snapshots the item by value for a cart.
func (c CatalogItem) AsCartLine() CartLine {
	return CartLine{ItemID: c.ID, Name: c.Name, UnitPrice: c.Price}
}
