package db

import (
	"context"
	"fmt"
	"sort"

	"github.com/ukydev/car-sales-analytics/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDealers wraps the MongoDB dealers collection.
type MongoDealers struct {
	Collection *mongo.Collection
}

// FindDealers returns all dealer documents ordered by dealer id.
func (c *MongoDealers) FindDealers(ctx context.Context) ([]models.Dealer, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var dealers []models.Dealer
	if err := cursor.All(ctx, &dealers); err != nil {
		return nil, err
	}
	sort.Slice(dealers, func(i, j int) bool { return dealers[i].DealerID < dealers[j].DealerID })
	return dealers, nil
}

// FindDealerByID finds one dealer by its numeric dealer id.
func (c *MongoDealers) FindDealerByID(ctx context.Context, dealerID int) (*models.Dealer, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var dealer models.Dealer
	err := c.Collection.FindOne(ctx, bson.M{"dealer_id": dealerID}).Decode(&dealer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("dealer %d: %w", dealerID, ErrNotFound)
		}
		return nil, err
	}
	return &dealer, nil
}
