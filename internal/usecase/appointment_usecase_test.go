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

func TestAppointmentUseCase_Create_SnapshotsServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	uc := NewAppointmentUseCase(repo, catalog)

	start := time.Date(2026, 3, 20, 14, 0, 0, 0, time.UTC)
	catalog.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.CatalogItem{ID: "c1", Name: "Corte", Price: 35}, nil)
	catalog.EXPECT().GetByID(gomock.Any(), "c2").Return(entities.CatalogItem{ID: "c2", Name: "Barba", Price: 25}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
		items := a.Service.Items()
		if a.Service.Kind() != entities.ServiceMany || len(items) != 2 || items[0].Name != "Corte" || items[1].Price != 25 {
			t.Fatalf("unexpected service snapshot: %+v", items)
		}
		if a.Title != "Ana" {
			t.Fatalf("expected title to default to customer name, got %q", a.Title)
		}
		return a, nil
	})

	_, err := uc.Create(context.Background(), AppointmentInput{
		CustomerName: "Ana",
		Start:        start,
		End:          start.Add(time.Hour),
		ServiceIDs:   []string{"c1", "c2"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAppointmentUseCase_Create_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	uc := NewAppointmentUseCase(repo, catalog)

	start := time.Date(2026, 3, 20, 14, 0, 0, 0, time.UTC)

	catalog.EXPECT().GetByID(gomock.Any(), "zz").Return(entities.CatalogItem{}, nil)
	_, err := uc.Create(context.Background(), AppointmentInput{CustomerName: "Ana", Start: start, End: start.Add(time.Hour), ServiceIDs: []string{"zz"}})
	if !errors.Is(err, ErrUnknownService) {
		t.Fatalf("expected ErrUnknownService, got %v", err)
	}

	_, err = uc.Create(context.Background(), AppointmentInput{CustomerName: "Ana", Start: start, End: start})
	if !errors.Is(err, entities.ErrInvalidAppointmentPeriod) {
		t.Fatalf("expected ErrInvalidAppointmentPeriod, got %v", err)
	}
}

func TestAppointmentUseCase_Upcoming(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	uc := NewAppointmentUseCase(repo, nil)

	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	repo.EXPECT().List(gomock.Any()).Return([]entities.Appointment{
		{ID: "late", Start: now.Add(48 * time.Hour)},
		{ID: "past", Start: now.Add(-time.Hour)},
		{ID: "soon", Start: now.Add(time.Hour)},
	}, nil)

	got, err := uc.Upcoming(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "soon" || got[1].ID != "late" {
		t.Fatalf("unexpected upcoming: %+v", got)
	}
}

func TestAppointmentUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	uc := NewAppointmentUseCase(repo, nil)

	repo.EXPECT().GetByID(gomock.Any(), "a1").Return(entities.Appointment{}, nil)
	if _, err := uc.GetByID(context.Background(), "a1"); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
	if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidAppointmentID) {
		t.Fatalf("expected ErrInvalidAppointmentID, got %v", err)
	}
}
