package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/car-sales-analytics/internal/config"
	"github.com/ukydev/car-sales-analytics/internal/dashboard"
	"github.com/ukydev/car-sales-analytics/internal/db"
	"github.com/ukydev/car-sales-analytics/internal/handlers"
	"github.com/ukydev/car-sales-analytics/internal/middleware"
)

func main() {
	cfg := config.Load()

	client, err := db.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	log.WithField("database", cfg.Database).Info("Connected to MongoDB")

	database := client.Database(cfg.Database)
	cars := &db.MongoCars{Collection: database.Collection(cfg.CarsCollection)}
	dealers := &db.MongoDealers{Collection: database.Collection(cfg.DealersCollection)}

	service := dashboard.New(cars, dealers, cfg)

	r := mux.NewRouter()
	r.Use(middleware.Recover, middleware.Logging)
	handlers.NewDashboardHandler(service, cfg.PageTitle).RegisterRoutes(r)
	r.Handle("/healthz", handlers.NewHealthHandler(func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	})).Methods(http.MethodGet)

	addr := ":" + cfg.Port
	log.WithField("addr", addr).Info("Dashboard listening")
	log.Fatal(http.ListenAndServe(addr, r))
}
