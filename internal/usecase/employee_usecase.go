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
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrInvalidEmployeeID = errors.New("invalid employee id")
)

// IEmployeeUseCase manages the staff roster. Checkout lists the barbers.
type IEmployeeUseCase interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	Update(ctx context.Context, id string, e entities.Employee) (entities.Employee, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	List(ctx context.Context, role entities.EmployeeRole) ([]entities.Employee, error)
}

type EmployeeUseCase struct {
	repo interfaces.IEmployeeRepository
}

var _ IEmployeeUseCase = (*EmployeeUseCase)(nil)

func NewEmployeeUseCase(repo interfaces.IEmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

func (u *EmployeeUseCase) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	e, err := e.Normalize()
	if err != nil {
		return entities.Employee{}, err
	}
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, e)
}

func (u *EmployeeUseCase) Update(ctx context.Context, id string, e entities.Employee) (entities.Employee, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	e, err = e.Normalize()
	if err != nil {
		return entities.Employee{}, err
	}
	e.ID = existing.ID
	e.CreatedAt = existing.CreatedAt
	return u.repo.Update(ctx, e)
}

func (u *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, existing.ID)
}

func (u *EmployeeUseCase) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Employee{}, ErrInvalidEmployeeID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if e.ID == "" {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

// List returns the roster, optionally restricted to one role.
func (u *EmployeeUseCase) List(ctx context.Context, role entities.EmployeeRole) ([]entities.Employee, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if role == "" {
		return all, nil
	}
	out := make([]entities.Employee, 0, len(all))
	for _, e := range all {
		if e.Role == role {
			out = append(out, e)
		}
	}
	return out, nil
}
