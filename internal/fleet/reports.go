// server/internal/fleet/reports.go
package fleet

import (
	"context"
	"fmt"

	"fleet-maintenance-api-server/internal/models"
	"fleet-maintenance-api-server/internal/report"
)

type Catalogs struct {
	Drivers   []models.Driver    `json:"drivers"`
	Providers []models.Provider  `json:"providers"`
	Trucks    []models.TruckView `json:"trucks"`
}

func (s *Service) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	drivers, err := s.repo.Drivers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return drivers, nil
}

// Catalogs bundles the reference lists forms pick from.
func (s *Service) Catalogs(ctx context.Context) (Catalogs, error) {
	drivers, err := s.ListDrivers(ctx)
	if err != nil {
		return Catalogs{}, err
	}
	providers, err := s.ListProviders(ctx)
	if err != nil {
		return Catalogs{}, err
	}
	trucks, err := s.ListTrucks(ctx)
	if err != nil {
		return Catalogs{}, err
	}
	return Catalogs{Drivers: drivers, Providers: providers, Trucks: trucks}, nil
}

func (s *Service) CostsByTruck(ctx context.Context) ([]report.TruckCost, error) {
	orders, err := s.repo.Orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	expenses, err := s.repo.Expenses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return report.CostsByTruck(orders, expenses), nil
}

func (s *Service) Dashboard(ctx context.Context) (report.Dashboard, error) {
	sales, err := s.repo.Sales.List(ctx)
	if err != nil {
		return report.Dashboard{}, fmt.Errorf("failed to list sales: %w", err)
	}
	orders, err := s.repo.Orders.List(ctx)
	if err != nil {
		return report.Dashboard{}, fmt.Errorf("failed to list orders: %w", err)
	}
	docs, err := s.ListDocuments(ctx)
	if err != nil {
		return report.Dashboard{}, err
	}
	expenses, err := s.repo.Expenses.List(ctx)
	if err != nil {
		return report.Dashboard{}, fmt.Errorf("failed to list expenses: %w", err)
	}
	budget, err := s.budget(ctx, expenses)
	if err != nil {
		return report.Dashboard{}, err
	}
	maintenance, err := s.ListMaintenance(ctx)
	if err != nil {
		return report.Dashboard{}, err
	}

	return report.Dashboard{
		Sales:     sales,
		Orders:    report.SummarizeOrders(orders),
		Documents: report.DocumentAlerts(docs),
		Expenses: report.DashboardExpenses{
			ExpenseSummary: report.SummarizeExpenses(expenses),
			Budget:         budget,
		},
		Maintenance: maintenance,
	}, nil
}

// AlertDigest lists what needs attention: expired or soon-expiring documents and
// calendar maintenance.
type AlertDigest struct {
	Date        string                   `json:"date"`
	Documents   []models.DocumentView    `json:"documents"`
	Maintenance []models.MaintenanceView `json:"maintenance"`
}

func (d AlertDigest) Empty() bool {
	return len(d.Documents) == 0 && len(d.Maintenance) == 0
}

func (s *Service) Alerts(ctx context.Context) (AlertDigest, error) {
	docs, err := s.ListDocuments(ctx)
	if err != nil {
		return AlertDigest{}, err
	}
	programs, err := s.ListMaintenance(ctx)
	if err != nil {
		return AlertDigest{}, err
	}

	digest := AlertDigest{
		Date:        s.todayString(),
		Documents:   []models.DocumentView{},
		Maintenance: []models.MaintenanceView{},
	}
	for _, d := range report.DocumentAlerts(docs) {
		if d.Status == models.DocumentExpired || d.Status == models.DocumentExpiringSoon {
			digest.Documents = append(digest.Documents, d)
		}
	}
	for _, m := range programs {
		if m.Status == models.MaintenanceExpired || m.Status == models.MaintenanceExpiringSoon {
			digest.Maintenance = append(digest.Maintenance, m)
		}
	}
	return digest, nil
}
