package db

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/ukydev/car-sales-analytics/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// MongoCars wraps the MongoDB cars collection.
type MongoCars struct {
	Collection *mongo.Collection
}

// mongoCarCursor wraps a MongoDB cursor for car queries.
type mongoCarCursor struct {
	cursor *mongo.Cursor
}

// All retrieves all results from the cursor.
func (m *mongoCarCursor) All(ctx context.Context, out interface{}) error {
	return m.cursor.All(ctx, out)
}

// Close closes the cursor.
func (m *mongoCarCursor) Close(ctx context.Context) error {
	return m.cursor.Close(ctx)
}

// Aggregate runs an aggregation pipeline against the cars collection.
func (c *MongoCars) Aggregate(ctx context.Context, pipeline mongo.Pipeline) (CarCursor, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	return &mongoCarCursor{cursor: cursor}, nil
}

// FindCars queries car documents from the collection.
func (c *MongoCars) FindCars(ctx context.Context, filter bson.M, opts ...*options.FindOptions) (CarCursor, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &mongoCarCursor{cursor: cursor}, nil
}

// FindCarByID finds one car by its hex object id. An id that is malformed or
// matches no document yields ErrNotFound.
func (c *MongoCars) FindCarByID(ctx context.Context, id string) (*models.Car, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid car id %q: %w", id, ErrNotFound)
	}
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var car models.Car
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&car)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("car %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &car, nil
}

// CountCars counts documents matching the filter.
func (c *MongoCars) CountCars(ctx context.Context, filter bson.M) (int64, error) {
	if c.Collection == nil {
		return 0, fmt.Errorf("mongo collection is nil")
	}
	return c.Collection.CountDocuments(ctx, filter)
}

// Distinct returns the sorted set of non-empty string values of a field.
func (c *MongoCars) Distinct(ctx context.Context, field string) ([]string, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	values, err := c.Collection.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out, nil
}

// FieldBounds returns the minimum and maximum value of a numeric field. An
// empty collection yields (0, 0) with no error.
func (c *MongoCars) FieldBounds(ctx context.Context, field string) (float64, float64, error) {
	if c.Collection == nil {
		return 0, 0, fmt.Errorf("mongo collection is nil")
	}
	min, err := c.fieldExtreme(ctx, field, 1)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, 0, nil
		}
		return 0, 0, err
	}
	max, err := c.fieldExtreme(ctx, field, -1)
	if err != nil {
		return 0, 0, err
	}
	return min, max, nil
}

func (c *MongoCars) fieldExtreme(ctx context.Context, field string, direction int) (float64, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: field, Value: direction}}).
		SetProjection(bson.M{field: 1, "_id": 0})
	var doc bson.M
	if err := c.Collection.FindOne(ctx, bson.M{}, opts).Decode(&doc); err != nil {
		return 0, err
	}
	return toFloat(doc[field]), nil
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}
