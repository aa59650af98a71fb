package entities

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// UnassignedStaffLabel groups sales recorded without a staff member.
const UnassignedStaffLabel = "Sem atendente"

type YearTotal struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

type StaffRank struct {
	Staff string  `json:"staff"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type SalesReport struct {
	Years        []YearTotal `json:"years"`
	Months       [12]float64 `json:"months"`
	CurrentYear  int         `json:"current_year"`
	CurrentMonth float64     `json:"current_month"`
	AllTime      float64     `json:"all_time"`
	SaleCount    int         `json:"sale_count"`
	StaffByTotal []StaffRank `json:"staff_by_total"`
	StaffByCount []StaffRank `json:"staff_by_count"`
}

// ParseSaleDate splits a dd/mm/yyyy date. ok is false for anything else.
func ParseSaleDate(s string) (day, month, year int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var err error
	if day, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, false
	}
	if month, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, false
	}
	if year, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, false
	}
	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1 {
		return 0, 0, 0, false
	}
	return day, month, year, true
}

// BuildSalesReport aggregates sales relative to now. Sales whose date does not
// parse only count towards AllTime and the staff ranking.
func BuildSalesReport(sales []Sale, now time.Time) SalesReport {
	allTime := decimal.Zero
	var months [12]decimal.Decimal
	for i := range months {
		months[i] = decimal.Zero
	}
	years := map[int]decimal.Decimal{}

	type staffAcc struct {
		total decimal.Decimal
		count int
	}
	staffOrder := []string{}
	staff := map[string]*staffAcc{}

	for _, s := range sales {
		amount := decimal.NewFromFloat(s.Total)
		allTime = allTime.Add(amount)

		name := strings.TrimSpace(s.Staff)
		if name == "" {
			name = UnassignedStaffLabel
		}
		acc, ok := staff[name]
		if !ok {
			acc = &staffAcc{total: decimal.Zero}
			staff[name] = acc
			staffOrder = append(staffOrder, name)
		}
		acc.total = acc.total.Add(amount)
		acc.count++

		_, month, year, ok := ParseSaleDate(s.Date)
		if !ok {
			continue
		}
		if cur, seen := years[year]; seen {
			years[year] = cur.Add(amount)
		} else {
			years[year] = amount
		}
		if year == now.Year() {
			months[month-1] = months[month-1].Add(amount)
		}
	}

	report := SalesReport{
		Years:       make([]YearTotal, 0, len(years)),
		CurrentYear: now.Year(),
		AllTime:     toMoney(allTime),
		SaleCount:   len(sales),
	}
	for y, total := range years {
		report.Years = append(report.Years, YearTotal{Year: y, Total: toMoney(total)})
	}
	sort.Slice(report.Years, func(i, j int) bool { return report.Years[i].Year < report.Years[j].Year })

	for i, m := range months {
		report.Months[i] = toMoney(m)
	}
	report.CurrentMonth = report.Months[now.Month()-1]

	ranks := make([]StaffRank, 0, len(staffOrder))
	for _, name := range staffOrder {
		acc := staff[name]
		ranks = append(ranks, StaffRank{Staff: name, Total: toMoney(acc.total), Count: acc.count})
	}
	byTotal := make([]StaffRank, len(ranks))
	copy(byTotal, ranks)
	sort.SliceStable(byTotal, func(i, j int) bool { return byTotal[i].Total > byTotal[j].Total })
	byCount := make([]StaffRank, len(ranks))
	copy(byCount, ranks)
	sort.SliceStable(byCount, func(i, j int) bool { return byCount[i].Count > byCount[j].Count })
	report.StaffByTotal = byTotal
	report.StaffByCount = byCount

	return report
}

func toMoney(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
