package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tommy251/Atlas2.0/app/models"
)

type mongoWishlist struct {
	col *mongo.Collection
}

func wishlistFilter(key models.WishlistKey) bson.M {
	return bson.M{"user_id": key.UserID, "item_id": key.ItemID}
}

func (r *mongoWishlist) Add(ctx context.Context, item models.WishlistItem) error {
	// Upsert keeps repeated adds idempotent without a read-then-write race.
	_, err := r.col.UpdateOne(ctx,
		wishlistFilter(item.Key()),
		bson.M{"$setOnInsert": item},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("wishlist: add: %w", err)
	}
	return nil
}

func (r *mongoWishlist) Remove(ctx context.Context, key models.WishlistKey) error {
	if _, err := r.col.DeleteOne(ctx, wishlistFilter(key)); err != nil {
		return fmt.Errorf("wishlist: remove: %w", err)
	}
	return nil
}

func (r *mongoWishlist) ItemsFor(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "item_id", Value: 1}})

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("wishlist: find: %w", err)
	}

	out := []models.WishlistItem{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("wishlist: decode: %w", err)
	}
	return out, nil
}

func (r *mongoWishlist) Count(ctx context.Context, userID string) (int, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("wishlist: count: %w", err)
	}
	return int(n), nil
}
