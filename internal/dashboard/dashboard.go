// Package dashboard runs the render pipeline behind the analytics page:
// filter state in, materialized charts and panels out.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/ukydev/car-sales-analytics/internal/config"
	"github.com/ukydev/car-sales-analytics/internal/db"
	"github.com/ukydev/car-sales-analytics/internal/models"
	"github.com/ukydev/car-sales-analytics/internal/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Service runs read-only dashboard queries against the database. One Service
// per process; it holds no state between renders beyond the connection it was
// built with.
type Service struct {
	cars    db.CarCollection
	dealers db.DealerCollection
	cfg     config.Config
	now     func() time.Time
}

// New creates a dashboard service over the given collections.
func New(cars db.CarCollection, dealers db.DealerCollection, cfg config.Config) *Service {
	return &Service{cars: cars, dealers: dealers, cfg: cfg, now: time.Now}
}

// PageData is the output of one full render pass.
type PageData struct {
	Title   string             `json:"title"`
	Count   int64              `json:"count"`
	Summary Summary            `json:"summary"`
	Charts  []models.ChartData `json:"charts"`
}

// Render executes one synchronous render pass for the given filter selection:
// compile the match, run every chart's materialization, fan out to the
// renderers. Any failed round trip aborts the pass with a QueryError so the
// page never shows partial results.
func (s *Service) Render(ctx context.Context, f models.FilterSelection) (*PageData, error) {
	match := query.Match(query.Conditions(f))

	count, err := s.cars.CountCars(ctx, match)
	if err != nil {
		return nil, &QueryError{Op: "count cars", Err: err}
	}

	var manufacturerRows []CountRow
	if err := materialize(ctx, s.cars, "manufacturer distribution", query.ManufacturerDistribution(match), &manufacturerRows); err != nil {
		return nil, err
	}

	var avgPriceRows []AvgRow
	if err := materialize(ctx, s.cars, "avg price by manufacturer", query.AvgPriceByManufacturer(match), &avgPriceRows); err != nil {
		return nil, err
	}

	var fuelRows []CountRow
	if err := materialize(ctx, s.cars, "fuel type distribution", query.FuelTypeDistribution(match), &fuelRows); err != nil {
		return nil, err
	}

	var severityRows []CountRow
	if err := materialize(ctx, s.cars, "accident severity distribution", query.AccidentSeverityDistribution(match), &severityRows); err != nil {
		return nil, err
	}

	cutoff := query.ServiceCutoff(s.now(), s.cfg.ServiceWindowYears)
	var serviceRows []YearCountRow
	if err := materialize(ctx, s.cars, "service frequency", query.ServiceFrequency(match, cutoff), &serviceRows); err != nil {
		return nil, err
	}

	scatterRows, err := s.scatterSample(ctx, match)
	if err != nil {
		return nil, err
	}

	return &PageData{
		Title:   s.cfg.PageTitle,
		Count:   count,
		Summary: buildSummary(count, scatterRows),
		Charts: []models.ChartData{
			ManufacturerChart(manufacturerRows),
			AvgPriceChart(avgPriceRows),
			FuelTypeChart(fuelRows),
			SeverityChart(severityRows, s.cfg.SeverityOrder),
			ServiceFrequencyChart(serviceRows, s.cfg.ServiceWindowYears),
			ScatterChart(scatterRows),
		},
	}, nil
}

// scatterSample pulls the projected price/mileage documents for the scatter
// chart, capped at the configured limit.
func (s *Service) scatterSample(ctx context.Context, match bson.M) ([]ScatterRow, error) {
	opts := options.Find().
		SetProjection(query.ScatterProjection()).
		SetLimit(s.cfg.ScatterLimit)
	cursor, err := s.cars.FindCars(ctx, match, opts)
	if err != nil {
		return nil, &QueryError{Op: "price vs mileage", Err: err}
	}
	defer cursor.Close(ctx)
	var rows []ScatterRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, &QueryError{Op: "price vs mileage", Err: err}
	}
	return rows, nil
}

// CarOption is one selector entry for the detail viewer.
type CarOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type carListRow struct {
	ID           primitive.ObjectID `bson:"_id"`
	Manufacturer string             `bson:"manufacturer"`
	Model        string             `bson:"model"`
	Price        float64            `bson:"price"`
}

// CarList returns the selector entries for cars matching the current filter
// selection, capped at the configured limit.
func (s *Service) CarList(ctx context.Context, f models.FilterSelection) ([]CarOption, error) {
	match := query.Match(query.Conditions(f))
	opts := options.Find().
		SetProjection(query.ListProjection()).
		SetLimit(s.cfg.CarListLimit)
	cursor, err := s.cars.FindCars(ctx, match, opts)
	if err != nil {
		return nil, &QueryError{Op: "car list", Err: err}
	}
	defer cursor.Close(ctx)
	var rows []carListRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, &QueryError{Op: "car list", Err: err}
	}
	out := make([]CarOption, 0, len(rows))
	for _, r := range rows {
		out = append(out, CarOption{
			ID:    r.ID.Hex(),
			Label: fmt.Sprintf("%s %s | £%.0f", r.Manufacturer, r.Model, r.Price),
		})
	}
	return out, nil
}

// FilterOptions discovers the widget option sets and bounds from the
// collection contents.
func (s *Service) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	manufacturers, err := s.cars.Distinct(ctx, "manufacturer")
	if err != nil {
		return nil, &QueryError{Op: "distinct manufacturers", Err: err}
	}
	fuels, err := s.cars.Distinct(ctx, "fuel_type")
	if err != nil {
		return nil, &QueryError{Op: "distinct fuel types", Err: err}
	}
	dealers, err := s.dealers.FindDealers(ctx)
	if err != nil {
		return nil, &QueryError{Op: "list dealers", Err: err}
	}
	priceMin, priceMax, err := s.cars.FieldBounds(ctx, "price")
	if err != nil {
		return nil, &QueryError{Op: "price bounds", Err: err}
	}
	yearMin, yearMax, err := s.cars.FieldBounds(ctx, "year_of_manufacturing")
	if err != nil {
		return nil, &QueryError{Op: "year bounds", Err: err}
	}

	dealerOpts := make([]models.DealerOption, 0, len(dealers))
	for _, d := range dealers {
		dealerOpts = append(dealerOpts, models.DealerOption{ID: d.DealerID, Name: d.Name})
	}
	return &models.FilterOptions{
		Manufacturers: manufacturers,
		FuelTypes:     fuels,
		Dealers:       dealerOpts,
		PriceRange:    models.Range{Min: priceMin, Max: priceMax},
		YearRange:     models.IntRange{Min: int(yearMin), Max: int(yearMax)},
	}, nil
}
