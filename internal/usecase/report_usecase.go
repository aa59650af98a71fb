package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"barbearia/internal/domain/entities"
	"barbearia/internal/domain/format"
	"barbearia/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	salesSheet   = "Vendas"
	monthlySheet = "Mensal"
)

var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// IReportUseCase aggregates the sale store for the reports page.
type IReportUseCase interface {
	Summary(ctx context.Context) (entities.SalesReport, error)
	ExportXLSX(ctx context.Context) ([]byte, error)
}

type ReportUseCase struct {
	sales interfaces.ISaleRepository
	loc   *time.Location
	now   func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(sales interfaces.ISaleRepository, loc *time.Location) *ReportUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &ReportUseCase{sales: sales, loc: loc, now: time.Now}
}

func (u *ReportUseCase) Summary(ctx context.Context) (entities.SalesReport, error) {
	sales, err := u.sales.List(ctx)
	if err != nil {
		return entities.SalesReport{}, err
	}
	return entities.BuildSalesReport(sales, u.now().In(u.loc)), nil
}

// ExportXLSX writes one row per sale on "Vendas" and the current year's
// monthly totals on "Mensal".
func (u *ReportUseCase) ExportXLSX(ctx context.Context) ([]byte, error) {
	sales, err := u.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	report := entities.BuildSalesReport(sales, u.now().In(u.loc))

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", salesSheet); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	header := []any{"ID", "Data", "Hora", "Cliente", "CPF", "Atendente", "Itens", "Pagamento", "Total"}
	if err := f.SetSheetRow(salesSheet, "A1", &header); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(salesSheet, "A1", "I1", bold); err != nil {
		return nil, err
	}
	for i, s := range sales {
		names := make([]string, 0, len(s.Items))
		for _, it := range s.Items {
			names = append(names, it.Name)
		}
		row := []any{
			s.ID, s.Date, s.Time, s.ClientName, format.FormatCPF(s.ClientTaxID), s.Staff,
			strings.Join(names, ", "), string(s.PaymentMethod), s.Total,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(salesSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(salesSheet, "A", "A", 38); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(salesSheet, "D", "G", 24); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(monthlySheet); err != nil {
		return nil, err
	}
	monthly := []any{"Mês", fmt.Sprintf("Total %d", report.CurrentYear)}
	if err := f.SetSheetRow(monthlySheet, "A1", &monthly); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(monthlySheet, "A1", "B1", bold); err != nil {
		return nil, err
	}
	for i, total := range report.Months {
		row := []any{monthNames[i], total}
		if err := f.SetSheetRow(monthlySheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}
	totalRow := []any{"Total geral", report.AllTime}
	if err := f.SetSheetRow(monthlySheet, "A15", &totalRow); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
