package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tommy251/Atlas2.0/app/models"
)

type mongoOrders struct {
	col *mongo.Collection
}

func (r *mongoOrders) Append(ctx context.Context, order models.Order) error {
	if _, err := r.col.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("orders: append: %w", err)
	}
	return nil
}

func (r *mongoOrders) All(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "placed_at", Value: 1}})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("orders: find: %w", err)
	}

	out := []models.Order{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("orders: decode: %w", err)
	}
	return out, nil
}
