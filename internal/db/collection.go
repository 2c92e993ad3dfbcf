package db

import (
	"context"

	"github.com/ukydev/car-sales-analytics/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CarCollection defines the read-only operations the dashboard runs against
// the cars collection.
type CarCollection interface {
	Aggregate(ctx context.Context, pipeline mongo.Pipeline) (CarCursor, error)
	FindCars(ctx context.Context, filter bson.M, opts ...*options.FindOptions) (CarCursor, error)
	FindCarByID(ctx context.Context, id string) (*models.Car, error)
	CountCars(ctx context.Context, filter bson.M) (int64, error)
	Distinct(ctx context.Context, field string) ([]string, error)
	FieldBounds(ctx context.Context, field string) (float64, float64, error)
}

// CarCursor defines the cursor operations used to drain query results.
type CarCursor interface {
	All(ctx context.Context, out interface{}) error
	Close(ctx context.Context) error
}

// DealerCollection defines the read-only operations against the dealers
// collection.
type DealerCollection interface {
	FindDealers(ctx context.Context) ([]models.Dealer, error)
	FindDealerByID(ctx context.Context, dealerID int) (*models.Dealer, error)
}
