package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds everything the dashboard reads from the environment.
type Config struct {
	MongoURI          string
	Database          string
	CarsCollection    string
	DealersCollection string
	Port              string
	PageTitle         string

	// ServiceWindowYears controls the service-frequency chart window.
	ServiceWindowYears int
	// SeverityOrder fixes the display order of known accident severities;
	// unknown categories are appended after these in count order.
	SeverityOrder []string
	// ScatterLimit caps how many documents the price/mileage chart plots.
	ScatterLimit int64
	// CarListLimit caps the detail-viewer selector list.
	CarListLimit int64
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Debug("loaded environment from .env")
	}

	return Config{
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Database:           getEnv("MONGO_DB", "car_sales_db"),
		CarsCollection:     getEnv("CARS_COLLECTION", "cars"),
		DealersCollection:  getEnv("DEALERS_COLLECTION", "dealers"),
		Port:               getEnv("PORT", "8080"),
		PageTitle:          getEnv("PAGE_TITLE", "Car Sales Analytics Dashboard"),
		ServiceWindowYears: getEnvInt("SERVICE_WINDOW_YEARS", 5),
		SeverityOrder:      getEnvList("SEVERITY_ORDER", []string{"Minor", "Moderate", "Severe", "Total Loss"}),
		ScatterLimit:       int64(getEnvInt("SCATTER_LIMIT", 2000)),
		CarListLimit:       int64(getEnvInt("CAR_LIST_LIMIT", 500)),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.WithFields(log.Fields{"key": key, "value": v}).Warn("ignoring non-integer environment value")
		return fallback
	}
	return n
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
