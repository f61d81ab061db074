// server/internal/database/mongo.go
package database

import (
	"context"
	"errors"
	"fmt"

	"fleet-maintenance-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	countersCollection = "counters"
	settingsCollection = "settings"
	budgetSettingID    = "budget"
)

// mongoCollection stores rows as documents whose _id is the sequential id.
// Ids come from a per-collection counter document so they survive deletes.
type mongoCollection[T any] struct {
	name     string
	coll     *mongo.Collection
	counters *mongo.Collection
}

func newMongoCollection[T any](db *mongo.Database, name string) *mongoCollection[T] {
	return &mongoCollection[T]{
		name:     name,
		coll:     db.Collection(name),
		counters: db.Collection(countersCollection),
	}
}

func (m *mongoCollection[T]) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := m.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": m.name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to reserve id in %s: %w", m.name, err)
	}
	return counter.Seq, nil
}

func (m *mongoCollection[T]) List(ctx context.Context) ([]T, error) {
	cursor, err := m.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", m.name, err)
	}
	defer cursor.Close(ctx)

	rows := []T{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", m.name, err)
	}
	return rows, nil
}

func (m *mongoCollection[T]) Get(ctx context.Context, id int64) (T, bool, error) {
	var row T
	err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&row)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return row, false, nil
	}
	if err != nil {
		return row, false, fmt.Errorf("failed to load %s %d: %w", m.name, id, err)
	}
	return row, true, nil
}

func (m *mongoCollection[T]) Create(ctx context.Context, build func(id int64) T) (T, error) {
	id, err := m.nextID(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	row := build(id)
	if _, err := m.coll.InsertOne(ctx, row); err != nil {
		return row, fmt.Errorf("failed to insert into %s: %w", m.name, err)
	}
	return row, nil
}

func (m *mongoCollection[T]) Update(ctx context.Context, id int64, apply func(*T)) (T, bool, error) {
	row, found, err := m.Get(ctx, id)
	if err != nil || !found {
		return row, found, err
	}
	apply(&row)
	res, err := m.coll.ReplaceOne(ctx, bson.M{"_id": id}, row)
	if err != nil {
		return row, false, fmt.Errorf("failed to update %s %d: %w", m.name, id, err)
	}
	return row, res.MatchedCount > 0, nil
}

func (m *mongoCollection[T]) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete %s %d: %w", m.name, id, err)
	}
	return res.DeletedCount > 0, nil
}

type mongoBudget struct {
	coll *mongo.Collection
}

func (b *mongoBudget) Get(ctx context.Context) (float64, error) {
	var doc struct {
		Amount float64 `bson:"amount"`
	}
	if err := b.coll.FindOne(ctx, bson.M{"_id": budgetSettingID}).Decode(&doc); err != nil {
		return 0, fmt.Errorf("failed to load budget: %w", err)
	}
	return doc.Amount, nil
}

func (b *mongoBudget) Set(ctx context.Context, amount float64) error {
	_, err := b.coll.UpdateOne(ctx,
		bson.M{"_id": budgetSettingID},
		bson.M{"$set": bson.M{"amount": amount}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save budget: %w", err)
	}
	return nil
}

// NewMongoRepository maps every collection onto db. The budget document is created
// with annualBudget when missing.
func NewMongoRepository(ctx context.Context, db *mongo.Database, annualBudget float64) (*Repository, error) {
	settings := db.Collection(settingsCollection)
	_, err := settings.UpdateOne(ctx,
		bson.M{"_id": budgetSettingID},
		bson.M{"$setOnInsert": bson.M{"amount": annualBudget}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise budget: %w", err)
	}

	return &Repository{
		Trucks:      newMongoCollection[models.Truck](db, "trucks"),
		Providers:   newMongoCollection[models.Provider](db, "providers"),
		Drivers:     newMongoCollection[models.Driver](db, "drivers"),
		Orders:      newMongoCollection[models.WorkOrder](db, "work_orders"),
		Documents:   newMongoCollection[models.Document](db, "documents"),
		Expenses:    newMongoCollection[models.Expense](db, "expenses"),
		Maintenance: newMongoCollection[models.MaintenanceProgram](db, "maintenance_programs"),
		Users:       newMongoCollection[models.User](db, "users"),
		Sales:       newMongoCollection[models.MonthlySale](db, "sales"),
		Budget:      &mongoBudget{coll: settings},
	}, nil
}
