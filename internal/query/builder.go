// Package query translates dashboard filter state into MongoDB match
// documents and the aggregation pipelines behind each chart.
package query

import (
	"time"

	"github.com/ukydev/car-sales-analytics/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Op is a comparison operator in a filter condition.
type Op string

const (
	OpEq  Op = "$eq"
	OpIn  Op = "$in"
	OpGte Op = "$gte"
	OpLte Op = "$lte"
)

// Condition is one field constraint derived from a filter widget.
type Condition struct {
	Field string
	Op    Op
	Value interface{}
}

// Conditions translates a FilterSelection into its constraint list. A widget
// at its default value contributes nothing, so an untouched dashboard matches
// the whole collection. Range bounds are inclusive.
func Conditions(f models.FilterSelection) []Condition {
	var conds []Condition
	if f.Manufacturer != "" {
		conds = append(conds, Condition{Field: "manufacturer", Op: OpEq, Value: f.Manufacturer})
	}
	if len(f.FuelTypes) > 0 {
		conds = append(conds, Condition{Field: "fuel_type", Op: OpIn, Value: f.FuelTypes})
	}
	if f.DealerID != 0 {
		conds = append(conds, Condition{Field: "dealer_id", Op: OpEq, Value: f.DealerID})
	}
	if f.PriceMin > 0 {
		conds = append(conds, Condition{Field: "price", Op: OpGte, Value: f.PriceMin})
	}
	if f.PriceMax > 0 {
		conds = append(conds, Condition{Field: "price", Op: OpLte, Value: f.PriceMax})
	}
	if f.YearMin > 0 {
		conds = append(conds, Condition{Field: "year_of_manufacturing", Op: OpGte, Value: f.YearMin})
	}
	if f.YearMax > 0 {
		conds = append(conds, Condition{Field: "year_of_manufacturing", Op: OpLte, Value: f.YearMax})
	}
	return conds
}

// Match compiles a condition list into a $match document. Equality compiles to
// plain field equality; range operators on the same field merge into one
// bounds document. An empty list compiles to an empty match.
func Match(conds []Condition) bson.M {
	match := bson.M{}
	for _, c := range conds {
		switch c.Op {
		case OpEq:
			match[c.Field] = c.Value
		case OpIn:
			match[c.Field] = bson.M{string(OpIn): c.Value}
		default:
			bounds, ok := match[c.Field].(bson.M)
			if !ok {
				bounds = bson.M{}
				match[c.Field] = bounds
			}
			bounds[string(c.Op)] = c.Value
		}
	}
	return match
}

func withMatch(match bson.M, stages ...bson.D) mongo.Pipeline {
	p := mongo.Pipeline{}
	if len(match) > 0 {
		p = append(p, bson.D{{Key: "$match", Value: match}})
	}
	return append(p, stages...)
}

// ManufacturerDistribution counts cars per manufacturer, most common first.
func ManufacturerDistribution(match bson.M) mongo.Pipeline {
	return withMatch(match,
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$manufacturer"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "label", Value: "$_id"},
			{Key: "count", Value: 1},
			{Key: "_id", Value: 0},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	)
}

// AvgPriceByManufacturer averages price per manufacturer, highest first.
func AvgPriceByManufacturer(match bson.M) mongo.Pipeline {
	return withMatch(match,
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$manufacturer"},
			{Key: "avg_price", Value: bson.D{{Key: "$avg", Value: "$price"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "label", Value: "$_id"},
			{Key: "avg_price", Value: 1},
			{Key: "_id", Value: 0},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "avg_price", Value: -1}}}},
	)
}

// FuelTypeDistribution counts cars per fuel type, most common first.
func FuelTypeDistribution(match bson.M) mongo.Pipeline {
	return withMatch(match,
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$fuel_type"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "label", Value: "$_id"},
			{Key: "count", Value: 1},
			{Key: "_id", Value: 0},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	)
}

// AccidentSeverityDistribution unwinds accident events and counts them per
// severity, most common first. Cars with no accidents contribute nothing.
func AccidentSeverityDistribution(match bson.M) mongo.Pipeline {
	return withMatch(match,
		bson.D{{Key: "$unwind", Value: "$accidents"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$accidents.severity"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "label", Value: "$_id"},
			{Key: "count", Value: 1},
			{Key: "_id", Value: 0},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	)
}

// ServiceFrequency unwinds service events newer than the cutoff and counts
// them per calendar year, oldest first.
func ServiceFrequency(match bson.M, cutoff time.Time) mongo.Pipeline {
	return withMatch(match,
		bson.D{{Key: "$unwind", Value: "$services"}},
		bson.D{{Key: "$match", Value: bson.M{
			"services.date_of_service": bson.M{string(OpGte): cutoff},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$year", Value: "$services.date_of_service"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "year", Value: "$_id"},
			{Key: "count", Value: 1},
			{Key: "_id", Value: 0},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "year", Value: 1}}}},
	)
}

// ServiceCutoff returns the same calendar day `years` back from now, which is
// the lower bound of the service-frequency window.
func ServiceCutoff(now time.Time, years int) time.Time {
	return time.Date(now.Year()-years, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ScatterProjection limits the price/mileage query to the fields the scatter
// chart plots.
func ScatterProjection() bson.M {
	return bson.M{"price": 1, "mileage": 1, "manufacturer": 1, "model": 1, "fuel_type": 1}
}

// ListProjection limits the car-list query to the selector display fields.
func ListProjection() bson.M {
	return bson.M{"manufacturer": 1, "model": 1, "price": 1}
}
