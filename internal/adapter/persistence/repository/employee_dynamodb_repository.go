package repository

import (
	"context"
	"errors"

	"barbearia/internal/domain/entities"
	"barbearia/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

type employeeItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Email       string `dynamodbav:"email,omitempty"`
	Role        string `dynamodbav:"cargo"`
	AccessLevel string `dynamodbav:"access_level"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// EmployeeDynamoRepository persists the staff roster (PK: id).
type EmployeeDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEmployeeRepository = (*EmployeeDynamoRepository)(nil)

func NewEmployeeDynamoRepository(ddb DynamoAPI, tableName string) *EmployeeDynamoRepository {
	return &EmployeeDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EmployeeDynamoRepository) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	return r.put(ctx, e, false)
}

func (r *EmployeeDynamoRepository) Update(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	return r.put(ctx, e, true)
}

func (r *EmployeeDynamoRepository) put(ctx context.Context, e entities.Employee, mustExist bool) (entities.Employee, error) {
	av, err := attributevalue.MarshalMap(employeeItem{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Role:        string(e.Role),
		AccessLevel: string(e.AccessLevel),
		CreatedAt:   formatTime(e.CreatedAt),
	})
	if err != nil {
		return entities.Employee{}, err
	}
	if err := putItem(ctx, r.ddb, r.tableName, av, mustExist); err != nil {
		if errors.Is(err, errNotStored) && mustExist {
			return entities.Employee{}, nil
		}
		return entities.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func (r *EmployeeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.Employee{}, err
	}
	var it employeeItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Employee{}, err
	}
	return fromEmployeeItem(it), nil
}

func (r *EmployeeDynamoRepository) List(ctx context.Context) ([]entities.Employee, error) {
	return scanAll(ctx, r.ddb, r.tableName, unmarshalInto(fromEmployeeItem))
}

func fromEmployeeItem(it employeeItem) entities.Employee {
	level, err := entities.ParseAccessLevel(it.AccessLevel)
	if err != nil {
		level = entities.AccessLevelEmployee
	}
	return entities.Employee{
		ID:          it.ID,
		Name:        it.Name,
		Email:       it.Email,
		Role:        entities.EmployeeRole(it.Role),
		AccessLevel: level,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
