package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tommy251/Atlas2.0/app/models"
)

type mongoUsers struct {
	col *mongo.Collection
}

func (r *mongoUsers) Create(ctx context.Context, user models.User) error {
	_, err := r.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrUsernameTaken
	}
	if err != nil {
		return fmt.Errorf("users: create: %w", err)
	}
	return nil
}

func (r *mongoUsers) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("users: find %s: %w", username, err)
	}
	return user, nil
}
