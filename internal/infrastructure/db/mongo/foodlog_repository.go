package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/caltrack/caltrack/internal/core/domain"
)

const entriesCollection = "food_entries"

type FoodLogRepository struct {
	col *mongo.Collection
}

func NewFoodLogRepository(db *mongo.Database) *FoodLogRepository {
	return &FoodLogRepository{col: db.Collection(entriesCollection)}
}

type mongoEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Date        string             `bson:"date"`
	Meal        string             `bson:"meal"`
	Name        string             `bson:"name"`
	Brand       string             `bson:"brand,omitempty"`
	Barcode     string             `bson:"barcode,omitempty"`
	Servings    float64            `bson:"servings"`
	ServingUnit string             `bson:"serving_unit"`
	Nutrients   domain.Nutrients   `bson:"nutrients"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (me mongoEntry) toDomain() *domain.FoodEntry {
	return &domain.FoodEntry{
		ID:          me.ID.Hex(),
		UserID:      me.UserID,
		Date:        me.Date,
		Meal:        domain.MealType(me.Meal),
		Name:        me.Name,
		Brand:       me.Brand,
		Barcode:     me.Barcode,
		Servings:    me.Servings,
		ServingUnit: me.ServingUnit,
		Nutrients:   me.Nutrients,
		CreatedAt:   me.CreatedAt.UTC(),
	}
}

// Create inserts a new entry document and returns it with its assigned ID.
func (r *FoodLogRepository) Create(ctx context.Context, e *domain.FoodEntry) (*domain.FoodEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoEntry{
		UserID:      e.UserID,
		Date:        e.Date,
		Meal:        string(e.Meal),
		Name:        e.Name,
		Brand:       e.Brand,
		Barcode:     e.Barcode,
		Servings:    e.Servings,
		ServingUnit: e.ServingUnit,
		Nutrients:   e.Nutrients,
		CreatedAt:   e.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	created := *e
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// ListByDate returns the user's entries for one calendar date, oldest first.
func (r *FoodLogRepository) ListByDate(ctx context.Context, userID, date string) ([]*domain.FoodEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"user_id": userID, "date": date}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer cur.Close(ctx)

	var entries []*domain.FoodEntry
	for cur.Next(ctx) {
		var me mongoEntry
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode entry: %w", err)
		}
		entries = append(entries, me.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Delete removes one entry scoped to its owner. A foreign or unknown ID
// reports domain.ErrEntryNotFound either way.
func (r *FoodLogRepository) Delete(ctx context.Context, userID, entryID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return domain.ErrEntryNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// DeleteByUser removes every entry the user owns (account-deletion cascade).
func (r *FoodLogRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("delete entries: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the index backing the per-day diary query.
func (r *FoodLogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
