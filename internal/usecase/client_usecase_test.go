package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"barbearia/internal/domain/entities"
	mock_interfaces "barbearia/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientUseCase_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClientRepository(ctrl)
	uc := NewClientUseCase(repo)

	if _, err := uc.Create(context.Background(), entities.Client{Name: "Ana"}); !errors.Is(err, entities.ErrInvalidClient) {
		t.Fatalf("expected ErrInvalidClient, got %v", err)
	}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Client) (entities.Client, error) {
		return c, nil
	})
	c, err := uc.Create(context.Background(), entities.Client{Name: "Ana", Email: "ana@example.com", Phone: "11999990000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID == "" || c.CreatedAt.IsZero() {
		t.Fatalf("expected id and creation date, got %+v", c)
	}
}

func TestClientUseCase_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClientRepository(ctrl)
	uc := NewClientUseCase(repo)

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1", Name: "Ana", CreatedAt: created}, nil).Times(2)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Client) (entities.Client, error) {
		if c.ID != "c1" || !c.CreatedAt.Equal(created) || c.Phone != "1133334444" {
			t.Fatalf("unexpected update: %+v", c)
		}
		return c, nil
	})
	repo.EXPECT().Delete(gomock.Any(), "c1").Return(nil)

	if _, err := uc.Update(context.Background(), "c1", entities.Client{Name: "Ana", Email: "a@b.c", Phone: "1133334444"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Delete(context.Background(), "c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "zz").Return(entities.Client{}, nil)
	if err := uc.Delete(context.Background(), "zz"); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientUseCase_ListSorted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClientRepository(ctrl)
	uc := NewClientUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Client{{Name: "bruno"}, {Name: "Ana"}}, nil)

	clients, err := uc.List(context.Background(), entities.ClientSortByName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clients[0].Name != "Ana" {
		t.Fatalf("expected Ana first, got %s", clients[0].Name)
	}
}
