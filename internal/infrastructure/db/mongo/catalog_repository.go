package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/infrastructure/fixtures"
)

const (
	collectionBuildings     = "buildings"
	collectionApartments    = "apartments"
	collectionDevices       = "devices"
	collectionWorkOrders    = "work_orders"
	collectionActivities    = "activities"
	collectionNotifications = "notifications"
)

// CatalogRepository implements ports.CatalogRepository using MongoDB.
type CatalogRepository struct {
	db *mongo.Database
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func findAll[T any](ctx context.Context, col *mongo.Collection, filter bson.M, sort bson.D) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}

	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", col.Name(), err)
	}
	return out, nil
}

func (r *CatalogRepository) Buildings(ctx context.Context) ([]domain.Building, error) {
	return findAll[domain.Building](ctx, r.db.Collection(collectionBuildings), bson.M{}, bson.D{{Key: "name", Value: 1}})
}

func (r *CatalogRepository) Apartments(ctx context.Context) ([]domain.Apartment, error) {
	return findAll[domain.Apartment](ctx, r.db.Collection(collectionApartments), bson.M{},
		bson.D{{Key: "building_id", Value: 1}, {Key: "floor", Value: 1}, {Key: "unit", Value: 1}})
}

func (r *CatalogRepository) Devices(ctx context.Context) ([]domain.Device, error) {
	return findAll[domain.Device](ctx, r.db.Collection(collectionDevices), bson.M{},
		bson.D{{Key: "apartment_id", Value: 1}, {Key: "_id", Value: 1}})
}

func (r *CatalogRepository) WorkOrders(ctx context.Context) ([]domain.WorkOrder, error) {
	return findAll[domain.WorkOrder](ctx, r.db.Collection(collectionWorkOrders), bson.M{}, bson.D{{Key: "_id", Value: 1}})
}

// Activities returns the feed, newest first.
func (r *CatalogRepository) Activities(ctx context.Context) ([]domain.Activity, error) {
	return findAll[domain.Activity](ctx, r.db.Collection(collectionActivities), bson.M{}, bson.D{{Key: "timestamp", Value: -1}})
}

func (r *CatalogRepository) Notifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	return findAll[domain.Notification](ctx, r.db.Collection(collectionNotifications),
		bson.M{"user_id": userID}, bson.D{{Key: "created_at", Value: -1}})
}

func (r *CatalogRepository) FindDevice(ctx context.Context, id string) (*domain.Device, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d domain.Device
	err := r.db.Collection(collectionDevices).FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDeviceNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *CatalogRepository) UpdateDeviceValue(ctx context.Context, id string, value any, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"current_value": value, "last_active": at.UTC()}}
	res, err := r.db.Collection(collectionDevices).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrDeviceNotFound
	}
	return nil
}

func (r *CatalogRepository) FindWorkOrder(ctx context.Context, id string) (*domain.WorkOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.WorkOrder
	err := r.db.Collection(collectionWorkOrders).FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWorkOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// UpdateWorkOrderStatus sets the status and, when completedAt is non-nil, the
// completion time. A nil completedAt clears it.
func (r *CatalogRepository) UpdateWorkOrderStatus(ctx context.Context, id string, status domain.WorkOrderStatus, completedAt *time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": string(status)}}
	if completedAt != nil {
		update["$set"] = bson.M{"status": string(status), "completed_at": completedAt.UTC()}
	} else {
		update["$unset"] = bson.M{"completed_at": ""}
	}

	res, err := r.db.Collection(collectionWorkOrders).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrWorkOrderNotFound
	}
	return nil
}

func (r *CatalogRepository) AppendActivity(ctx context.Context, activity domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.db.Collection(collectionActivities).InsertOne(ctx, activity)
	return err
}

// SeedIfEmpty loads snap when the buildings collection has no documents.
// It reports whether anything was inserted.
func (r *CatalogRepository) SeedIfEmpty(ctx context.Context, snap fixtures.Snapshot) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	n, err := r.db.Collection(collectionBuildings).CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, fmt.Errorf("count buildings: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	batches := []struct {
		name string
		docs []any
	}{
		{collectionBuildings, documents(snap.Buildings)},
		{collectionApartments, documents(snap.Apartments)},
		{collectionDevices, documents(snap.Devices)},
		{collectionWorkOrders, documents(snap.WorkOrders)},
		{collectionActivities, documents(snap.Activities)},
		{collectionNotifications, documents(snap.Notifications)},
	}
	for _, b := range batches {
		if len(b.docs) == 0 {
			continue
		}
		if _, err := r.db.Collection(b.name).InsertMany(ctx, b.docs); err != nil {
			return false, fmt.Errorf("seed %s: %w", b.name, err)
		}
	}
	return true, nil
}

// EnsureIndexes creates the lookup indexes used by the dashboards.
func (r *CatalogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		collectionApartments:    {{Keys: bson.D{{Key: "homeowner_id", Value: 1}}}},
		collectionDevices:       {{Keys: bson.D{{Key: "apartment_id", Value: 1}}}},
		collectionWorkOrders:    {{Keys: bson.D{{Key: "status", Value: 1}}}},
		collectionActivities:    {{Keys: bson.D{{Key: "timestamp", Value: -1}}}},
		collectionNotifications: {{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}}},
	}
	for name, models := range indexes {
		if _, err := r.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("indexes %s: %w", name, err)
		}
	}
	return nil
}

func documents[T any](items []T) []any {
	out := make([]any, len(items))
	for i := range items {
		out[i] = items[i]
	}
	return out
}
