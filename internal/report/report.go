// Package report combines derived data across entities into summary views.
package report

import (
	"fmt"
	"sort"
	"time"

	"fleet-maintenance-api-server/internal/derive"
	"fleet-maintenance-api-server/internal/models"
)

// UnknownPeriod buckets expenses whose date cannot be read.
const UnknownPeriod = "Unknown"

type TruckCost struct {
	Plate string  `json:"plate"`
	Total float64 `json:"total"`
}

// CostsByTruck adds every order total and expense cost to its plate. Rows keep the
// order in which plates first appear; records without a plate are skipped.
func CostsByTruck(orders []models.WorkOrder, expenses []models.Expense) []TruckCost {
	rows := []TruckCost{}
	index := make(map[string]int)

	add := func(plate string, amount float64) {
		if plate == "" {
			return
		}
		i, ok := index[plate]
		if !ok {
			i = len(rows)
			index[plate] = i
			rows = append(rows, TruckCost{Plate: plate})
		}
		rows[i].Total += amount
	}

	for _, o := range orders {
		add(o.Plate, derive.OrderTotal(o.Parts))
	}
	for _, e := range expenses {
		add(e.Plate, e.Cost)
	}
	return rows
}

type OrderSummary struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	ByPriority map[string]int `json:"byPriority"`
}

// SummarizeOrders tallies orders by the literal status and priority values they carry.
func SummarizeOrders(orders []models.WorkOrder) OrderSummary {
	s := OrderSummary{
		Total:      len(orders),
		ByStatus:   make(map[string]int),
		ByPriority: make(map[string]int),
	}
	for _, o := range orders {
		s.ByStatus[o.Status]++
		s.ByPriority[o.Priority]++
	}
	return s
}

// DocumentAlerts sorts enriched documents by days to expiry, soonest first.
// Documents without a date go last.
func DocumentAlerts(docs []models.DocumentView) []models.DocumentView {
	out := make([]models.DocumentView, len(docs))
	copy(out, docs)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].DaysToExpiry, out[j].DaysToExpiry
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	return out
}

type MonthlyExpenses struct {
	Period string           `json:"period"`
	Total  float64          `json:"total"`
	Items  []models.Expense `json:"items"`
}

type ExpenseSummary struct {
	Total   float64           `json:"total"`
	Monthly []MonthlyExpenses `json:"monthly"`
}

// SummarizeExpenses groups expenses by YYYY-MM of their date. Buckets are sorted by
// period with Unknown always last.
func SummarizeExpenses(expenses []models.Expense) ExpenseSummary {
	buckets := make(map[string]*MonthlyExpenses)
	summary := ExpenseSummary{Monthly: []MonthlyExpenses{}}

	for _, e := range expenses {
		key := Period(e.Date)
		b, ok := buckets[key]
		if !ok {
			b = &MonthlyExpenses{Period: key}
			buckets[key] = b
		}
		b.Total += e.Cost
		b.Items = append(b.Items, e)
		summary.Total += e.Cost
	}

	for _, b := range buckets {
		summary.Monthly = append(summary.Monthly, *b)
	}
	sort.Slice(summary.Monthly, func(i, j int) bool {
		a, b := summary.Monthly[i].Period, summary.Monthly[j].Period
		if a == UnknownPeriod || b == UnknownPeriod {
			return b == UnknownPeriod && a != UnknownPeriod
		}
		return a < b
	})
	return summary
}

// Period returns the YYYY-MM bucket of a date string, or UnknownPeriod.
func Period(date string) string {
	t, ok := derive.ParseDate(date)
	if !ok {
		return UnknownPeriod
	}
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// MaintenanceAlerts enriches every program with its projection.
func MaintenanceAlerts(programs []models.MaintenanceProgram, today time.Time) []models.MaintenanceView {
	out := make([]models.MaintenanceView, 0, len(programs))
	for _, p := range programs {
		next, status, days := derive.Maintenance(p, today)
		out = append(out, models.MaintenanceView{MaintenanceProgram: p, NextDue: next, Status: status, Days: days})
	}
	return out
}

// Dashboard is the combined view served to the reporting page.
type Dashboard struct {
	Sales       []models.MonthlySale     `json:"sales"`
	Orders      OrderSummary             `json:"orders"`
	Documents   []models.DocumentView    `json:"documents"`
	Expenses    DashboardExpenses        `json:"expenses"`
	Maintenance []models.MaintenanceView `json:"maintenance"`
}

type DashboardExpenses struct {
	ExpenseSummary
	Budget models.Budget `json:"budget"`
}
