package dashboard

import (
	"context"

	"github.com/ukydev/car-sales-analytics/internal/db"
	"go.mongodb.org/mongo-driver/mongo"
)

// CountRow is one label/count pair produced by a $group stage.
type CountRow struct {
	Label string `bson:"label" json:"label"`
	Count int    `bson:"count" json:"count"`
}

// AvgRow is one label/average pair.
type AvgRow struct {
	Label   string  `bson:"label" json:"label"`
	Average float64 `bson:"avg_price" json:"avg_price"`
}

// YearCountRow is one calendar-year/count pair.
type YearCountRow struct {
	Year  int `bson:"year" json:"year"`
	Count int `bson:"count" json:"count"`
}

// ScatterRow is one projected car document for the price/mileage chart.
type ScatterRow struct {
	Manufacturer string  `bson:"manufacturer" json:"manufacturer"`
	Model        string  `bson:"model" json:"model"`
	FuelType     string  `bson:"fuel_type" json:"fuel_type"`
	Price        float64 `bson:"price" json:"price"`
	Mileage      float64 `bson:"mileage" json:"mileage"`
}

// materialize runs one aggregation pipeline and drains it into out.
func materialize(ctx context.Context, cars db.CarCollection, op string, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := cars.Aggregate(ctx, pipeline)
	if err != nil {
		return &QueryError{Op: op, Err: err}
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, out); err != nil {
		return &QueryError{Op: op, Err: err}
	}
	return nil
}
