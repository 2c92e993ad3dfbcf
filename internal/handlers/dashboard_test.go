package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/car-sales-analytics/internal/config"
	"github.com/ukydev/car-sales-analytics/internal/dashboard"
	"github.com/ukydev/car-sales-analytics/internal/db"
	"github.com/ukydev/car-sales-analytics/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MockCarCollection is a mock implementation of db.CarCollection.
type MockCarCollection struct {
	mock.Mock
}

func (m *MockCarCollection) Aggregate(ctx context.Context, pipeline mongo.Pipeline) (db.CarCursor, error) {
	args := m.Called(ctx, pipeline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(db.CarCursor), args.Error(1)
}

func (m *MockCarCollection) FindCars(ctx context.Context, filter bson.M, opts ...*options.FindOptions) (db.CarCursor, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(db.CarCursor), args.Error(1)
}

func (m *MockCarCollection) FindCarByID(ctx context.Context, id string) (*models.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *MockCarCollection) CountCars(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCarCollection) Distinct(ctx context.Context, field string) ([]string, error) {
	args := m.Called(ctx, field)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCarCollection) FieldBounds(ctx context.Context, field string) (float64, float64, error) {
	args := m.Called(ctx, field)
	return args.Get(0).(float64), args.Get(1).(float64), args.Error(2)
}

// MockDealerCollection is a mock implementation of db.DealerCollection.
type MockDealerCollection struct {
	mock.Mock
}

func (m *MockDealerCollection) FindDealers(ctx context.Context) ([]models.Dealer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Dealer), args.Error(1)
}

func (m *MockDealerCollection) FindDealerByID(ctx context.Context, dealerID int) (*models.Dealer, error) {
	args := m.Called(ctx, dealerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dealer), args.Error(1)
}

// stubCursor hands back canned rows for whichever row type the caller drains.
type stubCursor struct {
	counts  []dashboard.CountRow
	avgs    []dashboard.AvgRow
	years   []dashboard.YearCountRow
	scatter []dashboard.ScatterRow
}

func (c *stubCursor) All(ctx context.Context, out interface{}) error {
	switch v := out.(type) {
	case *[]dashboard.CountRow:
		*v = c.counts
	case *[]dashboard.AvgRow:
		*v = c.avgs
	case *[]dashboard.YearCountRow:
		*v = c.years
	case *[]dashboard.ScatterRow:
		*v = c.scatter
	}
	return nil
}

func (c *stubCursor) Close(ctx context.Context) error { return nil }

func newTestRouter(cars db.CarCollection, dealers db.DealerCollection) *mux.Router {
	cfg := config.Config{
		PageTitle:          "Test Dashboard",
		ServiceWindowYears: 5,
		SeverityOrder:      []string{"Minor", "Moderate", "Severe", "Total Loss"},
		ScatterLimit:       2000,
		CarListLimit:       500,
	}
	service := dashboard.New(cars, dealers, cfg)
	r := mux.NewRouter()
	NewDashboardHandler(service, cfg.PageTitle).RegisterRoutes(r)
	return r
}

func TestDashboard_OK(t *testing.T) {
	cars := new(MockCarCollection)
	dealers := new(MockDealerCollection)

	cars.On("CountCars", mock.Anything, bson.M{"manufacturer": "Ford"}).Return(int64(3), nil)
	cars.On("Aggregate", mock.Anything, mock.Anything).
		Return(&stubCursor{counts: []dashboard.CountRow{{Label: "Ford", Count: 3}}}, nil).Times(5)
	cars.On("FindCars", mock.Anything, bson.M{"manufacturer": "Ford"}).
		Return(&stubCursor{scatter: []dashboard.ScatterRow{{FuelType: "Petrol", Price: 9000, Mileage: 1000}}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard?manufacturer=Ford", nil)
	w := httptest.NewRecorder()
	newTestRouter(cars, dealers).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"count":3`)
	assert.Contains(t, w.Body.String(), "Manufacturer Distribution")
}

func TestDashboard_QueryErrorIs502(t *testing.T) {
	cars := new(MockCarCollection)
	dealers := new(MockDealerCollection)

	cars.On("CountCars", mock.Anything, bson.M{}).Return(int64(0), errors.New("connection reset"))

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	w := httptest.NewRecorder()
	newTestRouter(cars, dealers).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "query failed")
}

func TestDashboard_BadFilterIs400(t *testing.T) {
	cars := new(MockCarCollection)
	dealers := new(MockDealerCollection)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard?price_min=cheap", nil)
	w := httptest.NewRecorder()
	newTestRouter(cars, dealers).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	cars.AssertNotCalled(t, "CountCars", mock.Anything, mock.Anything)
}

func TestCarDetail_NotFoundIs404(t *testing.T) {
	cars := new(MockCarCollection)
	dealers := new(MockDealerCollection)

	id := primitive.NewObjectID().Hex()
	cars.On("FindCarByID", mock.Anything, id).
		Return(nil, fmt.Errorf("car %s: %w", id, db.ErrNotFound))

	req := httptest.NewRequest(http.MethodGet, "/api/cars/"+id, nil)
	w := httptest.NewRecorder()
	newTestRouter(cars, dealers).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no matching car")
}

func TestCarDetail_OK(t *testing.T) {
	cars := new(MockCarCollection)
	dealers := new(MockDealerCollection)

	id := primitive.NewObjectID()
	cars.On("FindCarByID", mock.Anything, id.Hex()).
		Return(&models.Car{ID: id, Manufacturer: "Ford", Model: "Focus", DealerID: 1}, nil)
	dealers.On("FindDealerByID", mock.Anything, 1).
		Return(&models.Dealer{DealerID: 1, Name: "City Motors"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/cars/"+id.Hex(), nil)
	w := httptest.NewRecorder()
	newTestRouter(cars, dealers).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "City Motors")
}

func TestFilterOptions_OK(t *testing.T) {
	cars := new(MockCarCollection)
	dealers := new(MockDealerCollection)

	cars.On("Distinct", mock.Anything, "manufacturer").Return([]string{"Ford"}, nil)
	cars.On("Distinct", mock.Anything, "fuel_type").Return([]string{"Petrol"}, nil)
	dealers.On("FindDealers", mock.Anything).Return([]models.Dealer{}, nil)
	cars.On("FieldBounds", mock.Anything, "price").Return(1000.0, 9000.0, nil)
	cars.On("FieldBounds", mock.Anything, "year_of_manufacturing").Return(2010.0, 2024.0, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/filters/options", nil)
	w := httptest.NewRecorder()
	newTestRouter(cars, dealers).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"price_range":{"min":1000,"max":9000}`)
}

func TestIndex_RendersTitle(t *testing.T) {
	cars := new(MockCarCollection)
	dealers := new(MockDealerCollection)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	newTestRouter(cars, dealers).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Test Dashboard")
}

func TestParseFilter_MultiFuel(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/cars?fuel=Petrol,Hybrid&fuel=Electric&dealer=2", nil)
	f, err := parseFilter(req)
	require.NoError(t, err)
	assert.Equal(t, []string{"Petrol", "Hybrid", "Electric"}, f.FuelTypes)
	assert.Equal(t, 2, f.DealerID)
	assert.False(t, f.IsDefault())
}
