// Seeder fills the cars and dealers collections with realistic fixture data
// so the dashboard has something to render in local development. The
// production data load stays external.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ukydev/car-sales-analytics/internal/config"
	"github.com/ukydev/car-sales-analytics/internal/db"
	"github.com/ukydev/car-sales-analytics/internal/models"
)

var manufacturers = map[string][]string{
	"Ford":       {"Fiesta", "Focus", "Puma", "Kuga"},
	"Toyota":     {"Yaris", "Corolla", "C-HR", "RAV4"},
	"Volkswagen": {"Polo", "Golf", "Tiguan", "Passat"},
	"BMW":        {"1 Series", "3 Series", "X1", "X3"},
	"Nissan":     {"Micra", "Juke", "Qashqai", "Leaf"},
	"Tesla":      {"Model 3", "Model Y"},
}

var fuelTypes = []string{"Petrol", "Diesel", "Hybrid", "Electric"}

var severities = []string{"Minor", "Moderate", "Severe", "Total Loss"}

var featurePool = []string{
	"Air Conditioning", "Alloy Wheels", "Bluetooth", "Cruise Control",
	"Heated Seats", "Navigation", "Parking Sensors", "Reversing Camera",
	"Sunroof", "Tow Bar",
}

var serviceDescriptions = []string{
	"Annual service", "Oil and filter change", "Brake pad replacement",
	"Tyre rotation", "MOT and service", "Battery check",
}

var accidentDescriptions = []string{
	"Rear-end collision", "Car park scrape", "Side impact", "Windscreen damage",
}

var dealerNames = []string{
	"City Motors", "Riverside Autos", "Hilltop Cars", "Premier Vehicles",
	"Crossroads Garage", "Harbour View Motors", "Greenway Cars", "Kings Auto",
}

func randomFeatures(r *rand.Rand) []string {
	n := r.Intn(5)
	picked := make([]string, 0, n)
	for _, i := range r.Perm(len(featurePool))[:n] {
		picked = append(picked, featurePool[i])
	}
	return picked
}

func randomDate(r *rand.Rand, yearsBack int) time.Time {
	days := r.Intn(yearsBack * 365)
	return time.Now().UTC().AddDate(0, 0, -days).Truncate(24 * time.Hour)
}

func randomServices(r *rand.Rand) []models.ServiceEvent {
	n := r.Intn(7)
	events := make([]models.ServiceEvent, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, models.ServiceEvent{
			Date:        randomDate(r, 8),
			Description: serviceDescriptions[r.Intn(len(serviceDescriptions))],
		})
	}
	return events
}

func randomAccidents(r *rand.Rand) []models.AccidentEvent {
	n := r.Intn(4)
	events := make([]models.AccidentEvent, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, models.AccidentEvent{
			Date:        randomDate(r, 8),
			Severity:    severities[r.Intn(len(severities))],
			Description: accidentDescriptions[r.Intn(len(accidentDescriptions))],
		})
	}
	return events
}

func randomCar(r *rand.Rand, dealerCount int) models.Car {
	makes := make([]string, 0, len(manufacturers))
	for m := range manufacturers {
		makes = append(makes, m)
	}
	manufacturer := makes[r.Intn(len(makes))]
	car := models.Car{
		Manufacturer: manufacturer,
		Model:        manufacturers[manufacturer][r.Intn(len(manufacturers[manufacturer]))],
		FuelType:     fuelTypes[r.Intn(len(fuelTypes))],
		DealerID:     1 + r.Intn(dealerCount),
		Price:        float64(3000 + r.Intn(57000)),
		Mileage:      float64(1000 + r.Intn(119000)),
		EngineSize:   float64(10+r.Intn(30)) / 10,
		Year:         2008 + r.Intn(17),
		Features:     randomFeatures(r),
		Services:     randomServices(r),
		Accidents:    randomAccidents(r),
	}
	if car.FuelType == "Electric" {
		car.EngineSize = 0
	}
	return car
}

func main() {
	count := flag.Int("count", 500, "number of cars to insert")
	drop := flag.Bool("drop", false, "empty the collections before seeding")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	cfg := config.Load()
	r := rand.New(rand.NewSource(*seed))

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer client.Disconnect(ctx)

	database := client.Database(cfg.Database)
	cars := database.Collection(cfg.CarsCollection)
	dealers := database.Collection(cfg.DealersCollection)

	if *drop {
		if _, err := cars.DeleteMany(ctx, bson.M{}); err != nil {
			log.WithError(err).Fatal("Failed to empty cars collection")
		}
		if _, err := dealers.DeleteMany(ctx, bson.M{}); err != nil {
			log.WithError(err).Fatal("Failed to empty dealers collection")
		}
		log.Info("Emptied collections")
	}

	dealerDocs := make([]interface{}, 0, len(dealerNames))
	for i, name := range dealerNames {
		dealerDocs = append(dealerDocs, models.Dealer{
			DealerID: i + 1,
			Name:     name,
			City:     fmt.Sprintf("City %d", i+1),
		})
	}
	if _, err := dealers.InsertMany(ctx, dealerDocs); err != nil {
		log.WithError(err).Fatal("Failed to insert dealers")
	}
	log.WithField("dealers", len(dealerDocs)).Info("Inserted dealers")

	carDocs := make([]interface{}, 0, *count)
	for i := 0; i < *count; i++ {
		carDocs = append(carDocs, randomCar(r, len(dealerNames)))
	}
	if _, err := cars.InsertMany(ctx, carDocs); err != nil {
		log.WithError(err).Fatal("Failed to insert cars")
	}
	log.WithField("cars", len(carDocs)).Info("Seeding complete")
}
