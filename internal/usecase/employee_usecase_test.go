package usecase

import (
	"context"
	"errors"
	"testing"

	"barbearia/internal/domain/entities"
	mock_interfaces "barbearia/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEmployeeUseCase_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
	uc := NewEmployeeUseCase(repo)

	if _, err := uc.Create(context.Background(), entities.Employee{Name: "Carlos", Role: "pintor"}); !errors.Is(err, entities.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.Employee) (entities.Employee, error) {
		if e.AccessLevel != entities.AccessLevelEmployee {
			t.Fatalf("expected default access level, got %s", e.AccessLevel)
		}
		return e, nil
	})
	if _, err := uc.Create(context.Background(), entities.Employee{Name: "Carlos", Role: "barbeiro"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEmployeeUseCase_ListByRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
	uc := NewEmployeeUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Employee{
		{ID: "1", Name: "Carlos", Role: entities.EmployeeRoleBarbeiro},
		{ID: "2", Name: "Paula", Role: entities.EmployeeRoleGerente},
	}, nil).Times(2)

	barbers, err := uc.List(context.Background(), entities.EmployeeRoleBarbeiro)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(barbers) != 1 || barbers[0].Name != "Carlos" {
		t.Fatalf("unexpected barbers: %+v", barbers)
	}
	all, _ := uc.List(context.Background(), "")
	if len(all) != 2 {
		t.Fatalf("expected 2, got %d", len(all))
	}
}

func TestEmployeeUseCase_UpdateNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
	uc := NewEmployeeUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.Employee{}, nil)
	if _, err := uc.Update(context.Background(), "x", entities.Employee{Name: "A", Role: "gerente"}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}
