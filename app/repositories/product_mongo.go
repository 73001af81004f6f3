package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tommy251/Atlas2.0/app/models"
)

type mongoProducts struct {
	col *mongo.Collection
}

// ReplaceAll clears the collection and inserts the new set. A reader on
// another connection can observe an empty or partial catalogue between the
// two calls; only the memory backend swaps atomically.
func (r *mongoProducts) ReplaceAll(ctx context.Context, products []models.Product) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("products: clear: %w", err)
	}

	if len(products) == 0 {
		return nil
	}

	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = p
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("products: insert: %w", err)
	}
	return nil
}

func (r *mongoProducts) Get(ctx context.Context, id string) (models.Product, error) {
	var p models.Product
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("products: get %s: %w", id, err)
	}
	return p, nil
}

func (r *mongoProducts) List(ctx context.Context, category string) ([]models.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("products: list: %w", err)
	}

	out := []models.Product{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("products: decode: %w", err)
	}
	return out, nil
}

func (r *mongoProducts) Categories(ctx context.Context) ([]string, error) {
	raw, err := r.col.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("products: categories: %w", err)
	}

	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *mongoProducts) Search(ctx context.Context, q string) ([]models.Product, error) {
	if q == "" {
		return []models.Product{}, nil
	}

	re := primitive.Regex{Pattern: q, Options: "i"}
	cur, err := r.col.Find(ctx, bson.M{"$or": bson.A{
		bson.M{"name": re},
		bson.M{"category": re},
		bson.M{"description": re},
	}})
	if err != nil {
		return nil, fmt.Errorf("products: search: %w", err)
	}

	out := []models.Product{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("products: decode: %w", err)
	}
	return out, nil
}

func (r *mongoProducts) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("products: count: %w", err)
	}
	return n, nil
}
