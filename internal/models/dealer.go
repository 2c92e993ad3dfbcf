package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Dealer represents a dealership record.
type Dealer struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DealerID int                `bson:"dealer_id" json:"dealer_id"`
	Name     string             `bson:"name" json:"name"`
	City     string             `bson:"city" json:"city"`
}
