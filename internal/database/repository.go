// server/internal/database/repository.go
package database

import (
	"context"
	"fmt"

	"fleet-maintenance-api-server/config"
	"fleet-maintenance-api-server/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection stores rows of one entity type keyed by a sequential id.
// Ids are never reused, even after a delete.
type Collection[T any] interface {
	// List returns every row in insertion order.
	List(ctx context.Context) ([]T, error)
	// Get reports found=false for an unknown id.
	Get(ctx context.Context, id int64) (row T, found bool, err error)
	// Create reserves the next id and stores build(id).
	Create(ctx context.Context, build func(id int64) T) (T, error)
	// Update runs apply on the stored row and saves the result.
	Update(ctx context.Context, id int64, apply func(*T)) (row T, found bool, err error)
	// Delete reports whether a row existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// BudgetStore holds the single annual budget amount.
type BudgetStore interface {
	Get(ctx context.Context) (float64, error)
	Set(ctx context.Context, amount float64) error
}

// Repository bundles the collections of the application.
type Repository struct {
	Trucks      Collection[models.Truck]
	Providers   Collection[models.Provider]
	Drivers     Collection[models.Driver]
	Orders      Collection[models.WorkOrder]
	Documents   Collection[models.Document]
	Expenses    Collection[models.Expense]
	Maintenance Collection[models.MaintenanceProgram]
	Users       Collection[models.User]
	Sales       Collection[models.MonthlySale]
	Budget      BudgetStore

	close func(context.Context) error
}

// Close releases the backend connection, if any.
func (r *Repository) Close(ctx context.Context) error {
	if r.close == nil {
		return nil
	}
	return r.close(ctx)
}

// Open builds the repository selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig, annualBudget float64) (*Repository, error) {
	switch cfg.Driver {
	case "", "memory":
		return NewMemoryRepository(annualBudget), nil
	case "mongo":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			client.Disconnect(ctx)
			return nil, fmt.Errorf("failed to ping mongo: %w", err)
		}
		repo, err := NewMongoRepository(ctx, client.Database(cfg.Mongo.DBName), annualBudget)
		if err != nil {
			client.Disconnect(ctx)
			return nil, err
		}
		repo.close = client.Disconnect
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
