package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// Car represents one car sale record.
type Car struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Manufacturer string             `bson:"manufacturer" json:"manufacturer"`
	Model        string             `bson:"model" json:"model"`
	FuelType     string             `bson:"fuel_type" json:"fuel_type"` // "Petrol", "Diesel", "Hybrid", "Electric"
	DealerID     int                `bson:"dealer_id" json:"dealer_id"`
	Price        float64            `bson:"price" json:"price"`     // in GBP
	Mileage      float64            `bson:"mileage" json:"mileage"` // in miles
	EngineSize   float64            `bson:"engine_size" json:"engine_size"` // in litres
	Year         int                `bson:"year_of_manufacturing" json:"year_of_manufacturing"`
	Features     []string           `bson:"features" json:"features"`
	Services     []ServiceEvent     `bson:"services" json:"services"`
	Accidents    []AccidentEvent    `bson:"accidents" json:"accidents"`
}

// ServiceEvent records one service visit. Nested in a Car, no identity of its own.
type ServiceEvent struct {
	Date        time.Time `bson:"date_of_service" json:"date_of_service"`
	Description string    `bson:"description" json:"description"`
}

// AccidentEvent records one reported accident.
type AccidentEvent struct {
	Date        time.Time `bson:"date_of_accident" json:"date_of_accident"`
	Severity    string    `bson:"severity" json:"severity"` // "Minor", "Moderate", "Severe", "Total Loss"
	Description string    `bson:"description" json:"description"`
}
