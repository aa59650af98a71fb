package response

import (
	"time"

	"barbearia/internal/domain/entities"
	"barbearia/internal/domain/format"
)

type SaleResponse struct {
	ID             string             `json:"id"`
	ClientID       string             `json:"client_id"`
	ClientName     string             `json:"client_name"`
	ClientTaxID    string             `json:"client_tax_id"`
	TaxIDDisplay   string             `json:"client_tax_id_formatted"`
	Staff          string             `json:"staff"`
	AppointmentID  string             `json:"appointment_id,omitempty"`
	Items          []CartLineResponse `json:"items"`
	Total          float64            `json:"total"`
	TotalFormatted string             `json:"total_formatted"`
	Date           string             `json:"date"`
	Time           string             `json:"time"`
	PaymentMethod  string             `json:"payment_method"`
	PaymentID      string             `json:"payment_id,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

func FromSale(s entities.Sale) SaleResponse {
	return SaleResponse{
		ID:             s.ID,
		ClientID:       s.ClientID,
		ClientName:     s.ClientName,
		ClientTaxID:    s.ClientTaxID,
		TaxIDDisplay:   format.FormatCPF(s.ClientTaxID),
		Staff:          s.Staff,
		AppointmentID:  s.AppointmentID,
		Items:          FromCartLines(s.Items),
		Total:          s.Total,
		TotalFormatted: format.FormatBRL(s.Total),
		Date:           s.Date,
		Time:           s.Time,
		PaymentMethod:  string(s.PaymentMethod),
		PaymentID:      s.PaymentID,
		CreatedAt:      s.CreatedAt,
	}
}

func FromSales(ss []entities.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromSale(s))
	}
	return out
}

type ReconcileResponse struct {
	SalesChecked int      `json:"sales_checked"`
	Deleted      []string `json:"deleted_appointments"`
}

type MonthTotalResponse struct {
	Month          int     `json:"month"`
	Total          float64 `json:"total"`
	TotalFormatted string  `json:"total_formatted"`
}

type SalesReportResponse struct {
	Years                 []entities.YearTotal `json:"years"`
	Months                []MonthTotalResponse `json:"months"`
	CurrentYear           int                  `json:"current_year"`
	CurrentMonth          float64              `json:"current_month"`
	CurrentMonthFormatted string               `json:"current_month_formatted"`
	AllTime               float64              `json:"all_time"`
	AllTimeFormatted      string               `json:"all_time_formatted"`
	SaleCount             int                  `json:"sale_count"`
	StaffByTotal          []entities.StaffRank `json:"staff_by_total"`
	StaffByCount          []entities.StaffRank `json:"staff_by_count"`
}

func FromSalesReport(r entities.SalesReport) SalesReportResponse {
	months := make([]MonthTotalResponse, 0, len(r.Months))
	for i, v := range r.Months {
		months = append(months, MonthTotalResponse{Month: i + 1, Total: v, TotalFormatted: format.FormatBRL(v)})
	}
	years := r.Years
	if years == nil {
		years = []entities.YearTotal{}
	}
	byTotal, byCount := r.StaffByTotal, r.StaffByCount
	if byTotal == nil {
		byTotal = []entities.StaffRank{}
	}
	if byCount == nil {
		byCount = []entities.StaffRank{}
	}
	return SalesReportResponse{
		Years:                 years,
		Months:                months,
		CurrentYear:           r.CurrentYear,
		CurrentMonth:          r.CurrentMonth,
		CurrentMonthFormatted: format.FormatBRL(r.CurrentMonth),
		AllTime:               r.AllTime,
		AllTimeFormatted:      format.FormatBRL(r.AllTime),
		SaleCount:             r.SaleCount,
		StaffByTotal:          byTotal,
		StaffByCount:          byCount,
	}
}
