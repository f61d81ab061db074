// server/internal/database/seeder.go
package database

import (
	"context"
	"fmt"
	"strings"

	"fleet-maintenance-api-server/config"
	"fleet-maintenance-api-server/internal/auth"
	"fleet-maintenance-api-server/internal/models"

	"github.com/sirupsen/logrus"
)

// SeedAdmin makes sure the configured login exists.
func SeedAdmin(ctx context.Context, repo *Repository, cfg config.AuthConfig, log *logrus.Entry) error {
	users, err := repo.Users.List(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, cfg.AdminEmail) {
			log.Info("Admin user already exists. Seeding skipped.")
			return nil
		}
	}

	log.Info("Admin user not found. Seeding...")
	hashed, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	_, err = repo.Users.Create(ctx, func(id int64) models.User {
		return models.User{ID: id, Email: cfg.AdminEmail, Name: cfg.AdminName, PasswordHash: hashed}
	})
	if err != nil {
		return err
	}
	log.WithField("email", cfg.AdminEmail).Info("Admin user seeded successfully.")
	return nil
}

// SeedSampleData loads the demo fleet. It does nothing when trucks already exist.
func SeedSampleData(ctx context.Context, repo *Repository, log *logrus.Entry) error {
	existing, err := repo.Trucks.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info("Sample data already present. Seeding skipped.")
		return nil
	}

	year2021, year2019 := 2021, 2019
	trucks := []models.Truck{
		{Plate: "AA-BB11", Brand: "Volvo", Model: "FH16", Year: &year2021, Odometer: 125430, EntryDate: "2021-02-15",
			Status: models.TruckStatusOperational, Notes: "Main truck for long-haul routes", Driver: "Carlos Rivas"},
		{Plate: "CC-DD22", Brand: "Scania", Model: "R500", Year: &year2019, Odometer: 210780, EntryDate: "2019-09-08",
			Status: models.TruckStatusOperational, Notes: "Quarterly technical inspection pending", Driver: "Elena Muñoz"},
	}
	truckIDs := make(map[string]int64)
	for _, t := range trucks {
		t := t
		created, err := repo.Trucks.Create(ctx, func(id int64) models.Truck { t.ID = id; return t })
		if err != nil {
			return err
		}
		truckIDs[created.Plate] = created.ID
	}

	providers := []models.Provider{
		{LegalName: "Servicios Diesel Limitada", TradeName: "Servicios Diesel", TaxID: "761234560", Contact: "Juan Pérez",
			Phone: "+56 9 5555 5555", Email: "contacto@serviciosdiesel.cl", Line: "Engine maintenance"},
		{LegalName: "Tecnologías Hidráulicas SPA", TradeName: "TecHidráulica", TaxID: "789876541", Contact: "María González",
			Phone: "+56 2 2345 6789", Email: "ventas@techidraulica.cl", Line: "Hydraulic system repair"},
	}
	for _, p := range providers {
		p := p
		if _, err := repo.Providers.Create(ctx, func(id int64) models.Provider { p.ID = id; return p }); err != nil {
			return err
		}
	}

	drivers := []models.Driver{
		{Name: "Carlos Rivas", LicenseClass: "A5", Phone: "+56 9 1111 1111"},
		{Name: "Elena Muñoz", LicenseClass: "A4", Phone: "+56 9 2222 2222"},
		{Name: "Luis Fernández", LicenseClass: "A5", Phone: "+56 9 3333 3333"},
	}
	for _, d := range drivers {
		d := d
		if _, err := repo.Drivers.Create(ctx, func(id int64) models.Driver { d.ID = id; return d }); err != nil {
			return err
		}
	}

	provider1, provider2 := int64(1), int64(2)
	orders := []models.WorkOrder{
		{Title: "Engine filter replacement", Plate: "AA-BB11", Mechanic: "Pedro Salinas", ProviderID: &provider1,
			Driver: "Carlos Rivas", Priority: models.PriorityHigh, Status: models.OrderInProgress,
			Description: "Full lubrication system check and filter replacement.", RequestDate: "2024-05-12",
			Parts: []models.Part{{ID: 1, Name: "Oil filter", Quantity: 2, UnitCost: 45000}, {ID: 2, Name: "Fuel filter", Quantity: 1, UnitCost: 38000}}},
		{Title: "Brake inspection", Plate: "CC-DD22", Mechanic: "Valentina Soto", ProviderID: &provider2,
			Driver: "Elena Muñoz", Priority: models.PriorityMedium, Status: models.OrderPending,
			Description: "Brake diagnosis and adjustment after a vibration report.", RequestDate: "2024-06-03",
			Parts: []models.Part{{ID: 1, Name: "Rear brake pads", Quantity: 4, UnitCost: 29000}}},
	}
	for _, o := range orders {
		o := o
		if _, err := repo.Orders.Create(ctx, func(id int64) models.WorkOrder { o.ID = id; return o }); err != nil {
			return err
		}
	}

	truck1, truck2 := truckIDs["AA-BB11"], truckIDs["CC-DD22"]
	documents := []models.Document{
		{TruckID: &truck1, Plate: "AA-BB11", Type: "Circulation permit", Expiry: "2024-11-05", Responsible: "Carlos Rivas"},
		{TruckID: &truck2, Plate: "CC-DD22", Type: "Technical inspection", Expiry: "2024-08-18", Responsible: "Elena Muñoz"},
		{TruckID: &truck1, Plate: "AA-BB11", Type: "Mandatory insurance", Expiry: "2025-02-01", Responsible: "Administration"},
	}
	for _, d := range documents {
		d := d
		if _, err := repo.Documents.Create(ctx, func(id int64) models.Document { d.ID = id; return d }); err != nil {
			return err
		}
	}

	expenses := []models.Expense{
		{Plate: "AA-BB11", Concept: "Tyre set", Cost: 520000, Date: "2024-04-20"},
		{Plate: "CC-DD22", Concept: "Brake kit", Cost: 315000, Date: "2024-05-10"},
	}
	for _, e := range expenses {
		e := e
		if _, err := repo.Expenses.Create(ctx, func(id int64) models.Expense { e.ID = id; return e }); err != nil {
			return err
		}
	}

	programs := []models.MaintenanceProgram{
		{Plate: "AA-BB11", Task: "Engine oil change", ControlType: models.ControlByDistance, BaseDate: "2024-05-01", LastOdometer: 123000, Interval: 8000},
		{Plate: "CC-DD22", Task: "General service", ControlType: models.ControlByDate, BaseDate: "2024-06-15", Interval: 90},
	}
	for _, p := range programs {
		p := p
		if _, err := repo.Maintenance.Create(ctx, func(id int64) models.MaintenanceProgram { p.ID = id; return p }); err != nil {
			return err
		}
	}

	sales := []struct {
		month  string
		amount float64
	}{
		{"January", 12000000}, {"February", 9800000}, {"March", 13100000}, {"April", 14250000},
		{"May", 15120000}, {"June", 16080000}, {"July", 14800000}, {"August", 15230000},
		{"September", 16740000}, {"October", 17120000}, {"November", 18950000}, {"December", 21000000},
	}
	for _, s := range sales {
		s := s
		if _, err := repo.Sales.Create(ctx, func(id int64) models.MonthlySale {
			return models.MonthlySale{ID: id, Month: s.month, Amount: s.amount}
		}); err != nil {
			return err
		}
	}

	log.WithField("trucks", len(trucks)).Info("Sample data seeded successfully.")
	return nil
}
