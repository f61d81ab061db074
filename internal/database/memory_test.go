package database

import (
	"context"
	"testing"

	"fleet-maintenance-api-server/config"
	"fleet-maintenance-api-server/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTruck(plate string) func(int64) models.Truck {
	return func(id int64) models.Truck { return models.Truck{ID: id, Plate: plate} }
}

func TestMemoryCollectionAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCollection[models.Truck]()

	a, err := c.Create(ctx, newTruck("AA"))
	require.NoError(t, err)
	b, err := c.Create(ctx, newTruck("BB"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
}

func TestMemoryCollectionNeverReusesIDs(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCollection[models.Truck]()

	c.Create(ctx, newTruck("AA"))
	second, _ := c.Create(ctx, newTruck("BB"))
	ok, err := c.Delete(ctx, second.ID)
	require.NoError(t, err)
	require.True(t, ok)

	third, _ := c.Create(ctx, newTruck("CC"))
	assert.Equal(t, int64(3), third.ID)
}

func TestMemoryCollectionDeleteTwice(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCollection[models.Truck]()
	c.Create(ctx, newTruck("AA"))
	row, _ := c.Create(ctx, newTruck("BB"))

	ok, err := c.Delete(ctx, row.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Delete(ctx, row.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	rows, _ := c.List(ctx)
	require.Len(t, rows, 1)
	assert.Equal(t, "AA", rows[0].Plate)
}

func TestMemoryCollectionDeleteUnknownLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCollection[models.Truck]()
	c.Create(ctx, newTruck("AA"))

	ok, err := c.Delete(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	rows, _ := c.List(ctx)
	assert.Len(t, rows, 1)
}

func TestMemoryCollectionUpdate(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCollection[models.Truck]()
	created, _ := c.Create(ctx, func(id int64) models.Truck {
		return models.Truck{ID: id, Plate: "AA", Brand: "Volvo", Notes: "keep me"}
	})

	brand := "Scania"
	updated, found, err := c.Update(ctx, created.ID, func(t *models.Truck) {
		models.TruckPatch{Brand: &brand}.Apply(t)
	})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Scania", updated.Brand)
	assert.Equal(t, "keep me", updated.Notes)

	stored, found, _ := c.Get(ctx, created.ID)
	require.True(t, found)
	assert.Equal(t, "Scania", stored.Brand)

	_, found, err = c.Update(ctx, 99, func(*models.Truck) { t.Fatal("apply must not run for unknown ids") })
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCollectionListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCollection[models.Truck]()
	for _, p := range []string{"C", "A", "B"} {
		c.Create(ctx, newTruck(p))
	}
	rows, _ := c.List(ctx)
	plates := []string{}
	for _, r := range rows {
		plates = append(plates, r.Plate)
	}
	assert.Equal(t, []string{"C", "A", "B"}, plates)
}

func TestMemoryRepositoriesAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := NewMemoryRepository(100)
	b := NewMemoryRepository(200)

	a.Trucks.Create(ctx, newTruck("AA"))
	require.NoError(t, a.Budget.Set(ctx, 500))

	rows, _ := b.Trucks.List(ctx)
	assert.Empty(t, rows)
	amount, _ := b.Budget.Get(ctx)
	assert.Equal(t, float64(200), amount)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StoreConfig{Driver: "sqlite"}, 0)
	assert.Error(t, err)
}

func TestOpenMemory(t *testing.T) {
	repo, err := Open(context.Background(), config.StoreConfig{Driver: "memory"}, 15000000)
	require.NoError(t, err)
	amount, _ := repo.Budget.Get(context.Background())
	assert.Equal(t, float64(15000000), amount)
	assert.NoError(t, repo.Close(context.Background()))
}

func TestSeedSampleDataOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(15000000)
	logger, _ := test.NewNullLogger()
	log := logrus.NewEntry(logger)

	require.NoError(t, SeedSampleData(ctx, repo, log))
	require.NoError(t, SeedSampleData(ctx, repo, log))

	trucks, _ := repo.Trucks.List(ctx)
	assert.Len(t, trucks, 2)
	orders, _ := repo.Orders.List(ctx)
	assert.Len(t, orders, 2)
	docs, _ := repo.Documents.List(ctx)
	assert.Len(t, docs, 3)
	sales, _ := repo.Sales.List(ctx)
	assert.Len(t, sales, 12)
}

func TestSeedAdminOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(0)
	logger, hook := test.NewNullLogger()
	cfg := config.AuthConfig{AdminEmail: "admin@example.com", AdminPassword: "admin123", AdminName: "Admin"}

	require.NoError(t, SeedAdmin(ctx, repo, cfg, logrus.NewEntry(logger)))
	require.NoError(t, SeedAdmin(ctx, repo, cfg, logrus.NewEntry(logger)))

	users, _ := repo.Users.List(ctx)
	require.Len(t, users, 1)
	assert.NotEqual(t, "admin123", users[0].PasswordHash)
	assert.Equal(t, "Admin user already exists. Seeding skipped.", hook.LastEntry().Message)
}
