package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"barbearia/internal/domain/entities"
	"barbearia/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogDynamoRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewCatalogDynamoRepository(ddb, "catalog")

	stock := 7
	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, entities.CatalogItem{ID: "p1", Name: "Pomada", Price: 29.9, Category: entities.CatalogCategoryProduto, StockCount: &stock, CreatedAt: created, UpdatedAt: created})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Pomada", got.Name)
	assert.Equal(t, 29.9, got.Price)
	require.NotNil(t, got.StockCount)
	assert.Equal(t, 7, *got.StockCount)
	assert.True(t, got.CreatedAt.Equal(created))

	_, err = repo.Create(ctx, entities.CatalogItem{ID: "p1", Name: "dup"})
	assert.Error(t, err)

	missing, err := repo.Update(ctx, entities.CatalogItem{ID: "nope", Name: "x"})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	got.Price = 31
	_, err = repo.Update(ctx, got)
	require.NoError(t, err)
	got, _ = repo.GetByID(ctx, "p1")
	assert.Equal(t, 31.0, got.Price)

	require.NoError(t, repo.Delete(ctx, "p1"))
	got, err = repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestCatalogDynamoRepository_ListPaginates(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	ddb.pageSize = 2
	repo := NewCatalogDynamoRepository(ddb, "catalog")

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		_, err := repo.Create(ctx, entities.CatalogItem{ID: id, Name: id, Category: entities.CatalogCategoryServico})
		require.NoError(t, err)
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestAppointmentDynamoRepository_ServiceShapes(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewAppointmentDynamoRepository(ddb, "appointments")

	base := func(id string) map[string]types.AttributeValue {
		return map[string]types.AttributeValue{
			"id":            &types.AttributeValueMemberS{Value: id},
			"customer_name": &types.AttributeValueMemberS{Value: "Ana"},
		}
	}
	svc := func(name, price string) *types.AttributeValueMemberM {
		return &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"name":  &types.AttributeValueMemberS{Value: name},
			"price": &types.AttributeValueMemberS{Value: price},
		}}
	}

	none := base("none")
	ddb.seed("appointments", none)

	null := base("null")
	null["service"] = &types.AttributeValueMemberNULL{Value: true}
	ddb.seed("appointments", null)

	single := base("single")
	single["service"] = svc("Corte", "35")
	ddb.seed("appointments", single)

	many := base("many")
	many["service"] = &types.AttributeValueMemberL{Value: []types.AttributeValue{svc("Barba", "25"), svc("Corte", "35")}}
	ddb.seed("appointments", many)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	byID := map[string]entities.Appointment{}
	for _, a := range list {
		byID[a.ID] = a
	}

	assert.Equal(t, entities.ServiceNone, byID["none"].Service.Kind())
	assert.Equal(t, entities.ServiceNone, byID["null"].Service.Kind())
	assert.Equal(t, entities.ServiceSingle, byID["single"].Service.Kind())
	assert.Equal(t, []entities.CartLine{{Name: "Corte", UnitPrice: 35}}, byID["single"].Service.CartLines())
	assert.Equal(t, []entities.CartLine{{Name: "Barba", UnitPrice: 25}, {Name: "Corte", UnitPrice: 35}}, byID["many"].Service.CartLines())

	bad := base("bad")
	bad["service"] = &types.AttributeValueMemberS{Value: "Corte"}
	ddb.seed("appointments", bad)
	_, err = repo.GetByID(ctx, "bad")
	assert.ErrorIs(t, err, entities.ErrInvalidAppointment)
}

func TestAppointmentDynamoRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentDynamoRepository(newFakeDynamo(), "appointments")

	start := time.Date(2026, 3, 20, 14, 0, 0, 0, time.UTC)
	a := entities.Appointment{
		ID: "a1", CustomerName: "Ana", CustomerTaxID: "11122233344",
		Start: start, End: start.Add(time.Hour),
		Service: entities.ManyServices(
			entities.ServiceSnapshot{ID: "c1", Name: "Corte", Price: 35},
			entities.ServiceSnapshot{ID: "c2", Name: "Barba", Price: 25},
		),
	}
	_, err := repo.Create(ctx, a)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, got.Start.Equal(start))
	assert.Equal(t, a.Service.Items(), got.Service.Items())
}

func TestSaleDynamoRepository_CommitConsumesAppointment(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	appointments := NewAppointmentDynamoRepository(ddb, "appointments")
	sales := NewSaleDynamoRepository(ddb, "sales", "appointments")

	start := time.Date(2026, 3, 20, 14, 0, 0, 0, time.UTC)
	_, err := appointments.Create(ctx, entities.Appointment{ID: "a1", CustomerName: "Ana", Start: start, End: start.Add(time.Hour)})
	require.NoError(t, err)

	sale := entities.Sale{
		ID: "sale-1", ClientID: "a1", ClientName: "Ana", Staff: "Carlos", AppointmentID: "a1",
		Items: []entities.CartLine{{ItemID: "c1", Name: "Corte", UnitPrice: 35}}, Total: 35,
		Date: "20/03/2026", Time: "14:55:00", PaymentMethod: entities.PaymentMethodDinheiro,
	}
	_, err = sales.Commit(ctx, sale)
	require.NoError(t, err)

	gone, err := appointments.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Empty(t, gone.ID)

	stored, err := sales.GetByID(ctx, "sale-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", stored.ClientName)
	assert.Equal(t, 35.0, stored.Total)
	assert.Equal(t, sale.Items, stored.Items)

	// Replaying the same request token is absorbed by DynamoDB.
	_, err = sales.Commit(ctx, sale)
	require.NoError(t, err)

	// Once the token has expired the conditional put reports the duplicate.
	ddb.tokens = map[string]bool{}
	_, err = sales.Commit(ctx, sale)
	assert.True(t, errors.Is(err, interfaces.ErrSaleAlreadyCommitted))

	list, err := sales.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSaleDynamoRepository_RejectsTotalMismatch(t *testing.T) {
	sales := NewSaleDynamoRepository(newFakeDynamo(), "sales", "appointments")
	_, err := sales.Commit(context.Background(), entities.Sale{ID: "s", Items: []entities.CartLine{{Name: "x", UnitPrice: 1}}, Total: 2})
	assert.ErrorIs(t, err, entities.ErrSaleTotalMismatch)
}

func TestClientAndEmployeeRepositories(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	clients := NewClientDynamoRepository(ddb, "clients")
	employees := NewEmployeeDynamoRepository(ddb, "employees")

	_, err := clients.Create(ctx, entities.Client{ID: "c1", Name: "Ana", Email: "a@b.c", Phone: "1"})
	require.NoError(t, err)
	list, err := clients.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a@b.c", list[0].Email)

	_, err = employees.Create(ctx, entities.Employee{ID: "e1", Name: "Carlos", Role: entities.EmployeeRoleBarbeiro, AccessLevel: entities.AccessLevelAdmin})
	require.NoError(t, err)
	e, err := employees.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, entities.EmployeeRoleBarbeiro, e.Role)
	assert.Equal(t, entities.AccessLevelAdmin, e.AccessLevel)

	missing, err := employees.Update(ctx, entities.Employee{ID: "zz", Name: "x"})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}
