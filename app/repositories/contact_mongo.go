package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tommy251/Atlas2.0/app/models"
)

type mongoContact struct {
	col *mongo.Collection
}

func (r *mongoContact) Append(ctx context.Context, msg models.ContactMessage) error {
	if _, err := r.col.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("contact: append: %w", err)
	}
	return nil
}

func (r *mongoContact) All(ctx context.Context) ([]models.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "received_at", Value: 1}})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("contact: find: %w", err)
	}

	out := []models.ContactMessage{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("contact: decode: %w", err)
	}
	return out, nil
}
