package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tommy251/Atlas2.0/app/models"
)

type mongoCart struct {
	col *mongo.Collection
}

func cartFilter(key models.CartKey) bson.M {
	return bson.M{
		"user_id": key.UserID,
		"item_id": key.ItemID,
		"color":   key.Color,
		"storage": key.Storage,
	}
}

func (r *mongoCart) Add(ctx context.Context, item models.CartItem) error {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	filter := cartFilter(item.Key())

	var existing models.CartItem
	err := r.col.FindOne(ctx, filter).Decode(&existing)
	switch {
	case err == nil:
		// Existing row keeps its first-add price snapshot.
		_, err = r.col.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"quantity": item.Quantity}})
		if err != nil {
			return fmt.Errorf("cart: increment: %w", err)
		}
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		if _, err := r.col.InsertOne(ctx, item); err != nil {
			return fmt.Errorf("cart: insert: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("cart: lookup: %w", err)
	}
}

func (r *mongoCart) SetQuantity(ctx context.Context, key models.CartKey, quantity int) error {
	filter := cartFilter(key)

	if quantity <= 0 {
		if _, err := r.col.DeleteOne(ctx, filter); err != nil {
			return fmt.Errorf("cart: delete: %w", err)
		}
		return nil
	}

	_, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"quantity": quantity}})
	if err != nil {
		return fmt.Errorf("cart: set quantity: %w", err)
	}
	return nil
}

func (r *mongoCart) ItemsFor(ctx context.Context, userID string) ([]models.CartItem, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "item_id", Value: 1},
		{Key: "color", Value: 1},
		{Key: "storage", Value: 1},
	})

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("cart: find: %w", err)
	}

	out := []models.CartItem{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("cart: decode: %w", err)
	}
	return out, nil
}
