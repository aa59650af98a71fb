package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"barbearia/internal/domain/entities"
	mock_interfaces "barbearia/internal/usecase/interfaces/mocks"

	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func TestSaleUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISaleRepository(ctrl)
	uc := NewSaleUseCase(repo, nil)

	repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Sale{}, nil)
	if _, err := uc.GetByID(context.Background(), "s1"); !errors.Is(err, ErrSaleNotFound) {
		t.Fatalf("expected ErrSaleNotFound, got %v", err)
	}
	if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidSaleID) {
		t.Fatalf("expected ErrInvalidSaleID, got %v", err)
	}
}

func TestSaleUseCase_ReconcileAppointments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISaleRepository(ctrl)
	appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	uc := NewSaleUseCase(repo, appointments)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Sale{
		{ID: "s1", AppointmentID: "a1"},
		{ID: "s2"},
	}, nil)
	appointments.EXPECT().List(gomock.Any()).Return([]entities.Appointment{{ID: "a1"}, {ID: "a2"}}, nil)
	appointments.EXPECT().Delete(gomock.Any(), "a1").Return(nil)

	res, err := uc.ReconcileAppointments(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.SalesChecked != 2 || len(res.Deleted) != 1 || res.Deleted[0] != "a1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSaleUseCase_ReconcileAppointments_NothingToDo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISaleRepository(ctrl)
	appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	uc := NewSaleUseCase(repo, appointments)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Sale{{ID: "s1"}}, nil)

	res, err := uc.ReconcileAppointments(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Deleted) != 0 {
		t.Fatalf("expected nothing deleted, got %v", res.Deleted)
	}
}

func TestReportUseCase_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISaleRepository(ctrl)
	uc := NewReportUseCase(repo, time.UTC)
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }

	repo.EXPECT().List(gomock.Any()).Return([]entities.Sale{
		{Staff: "Carlos", Total: 35, Date: "01/03/2026"},
		{Staff: "Carlos", Total: 20, Date: "10/02/2026"},
	}, nil)

	r, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.CurrentMonth != 35 || r.AllTime != 55 || r.Months[1] != 20 {
		t.Fatalf("unexpected report: %+v", r)
	}
}

func TestReportUseCase_ExportXLSX(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISaleRepository(ctrl)
	uc := NewReportUseCase(repo, time.UTC)
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }

	repo.EXPECT().List(gomock.Any()).Return([]entities.Sale{{
		ID: "s1", Date: "01/03/2026", Time: "10:00:00", ClientName: "Ana", ClientTaxID: "11122233344",
		Staff: "Carlos", Items: []entities.CartLine{{Name: "Corte", UnitPrice: 35}}, Total: 35,
		PaymentMethod: entities.PaymentMethodDinheiro,
	}}, nil)

	data, err := uc.ExportXLSX(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Vendas" || sheets[1] != "Mensal" {
		t.Fatalf("unexpected sheets: %v", sheets)
	}
	rows, err := f.GetRows("Vendas")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 || rows[1][3] != "Ana" || rows[1][4] != "111.222.333-44" || rows[1][6] != "Corte" {
		t.Fatalf("unexpected sales rows: %v", rows)
	}
	march, err := f.GetCellValue("Mensal", "B4")
	if err != nil || march != "35" {
		t.Fatalf("expected March total 35, got %q (%v)", march, err)
	}
}
