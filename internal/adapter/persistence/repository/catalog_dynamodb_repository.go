package repository

import (
	"context"
	"errors"

	"barbearia/internal/domain/entities"
	"barbearia/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

type catalogItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Price       string `dynamodbav:"price"`
	Category    string `dynamodbav:"category"`
	StockCount  *int   `dynamodbav:"stock_count,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// CatalogDynamoRepository persists CatalogItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type CatalogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb DynamoAPI, tableName string) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CatalogDynamoRepository) Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	return r.put(ctx, item, false)
}

// Update replaces the stored item. A missing item yields a zero value.
func (r *CatalogDynamoRepository) Update(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	return r.put(ctx, item, true)
}

func (r *CatalogDynamoRepository) put(ctx context.Context, item entities.CatalogItem, mustExist bool) (entities.CatalogItem, error) {
	av, err := attributevalue.MarshalMap(toCatalogItem(item))
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if err := putItem(ctx, r.ddb, r.tableName, av, mustExist); err != nil {
		if errors.Is(err, errNotStored) && mustExist {
			return entities.CatalogItem{}, nil
		}
		return entities.CatalogItem{}, err
	}
	return item, nil
}

func (r *CatalogDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func (r *CatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogItem, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.CatalogItem{}, err
	}
	var it catalogItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.CatalogItem{}, err
	}
	return fromCatalogItem(it), nil
}

func (r *CatalogDynamoRepository) List(ctx context.Context) ([]entities.CatalogItem, error) {
	return scanAll(ctx, r.ddb, r.tableName, unmarshalInto(fromCatalogItem))
}

func toCatalogItem(c entities.CatalogItem) catalogItem {
	return catalogItem{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Price:       floatToString(c.Price),
		Category:    string(c.Category),
		StockCount:  c.StockCount,
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
	}
}

func fromCatalogItem(it catalogItem) entities.CatalogItem {
	category, err := entities.ParseCatalogCategory(it.Category)
	if err != nil {
		category = entities.CatalogCategory(it.Category)
	}
	return entities.CatalogItem{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       parseFloat(it.Price),
		Category:    category,
		StockCount:  it.StockCount,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
