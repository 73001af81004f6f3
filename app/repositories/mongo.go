package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tommy251/Atlas2.0/config"
)

// Collection names are fixed; an existing database keeps working across
// releases.
const (
	colProducts = "products"
	colCart     = "cart"
	colWishlist = "wishlist"
	colUsers    = "users"
	colOrders   = "orders"
	colContact  = "contact_forms"
)

// newMongoStores connects to MongoDB and builds the store set on top of it.
func newMongoStores(ctx context.Context) (*Stores, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(config.MongoURL()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("repositories: mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("repositories: mongo ping: %w", err)
	}

	db := client.Database(config.MongoDatabase())

	// The username duplicate check relies on this index; signup races are
	// resolved by the server, not by application-level locking.
	_, err = db.Collection(colUsers).Indexes().CreateOne(connectCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("repositories: users index: %w", err)
	}

	return &Stores{
		Products: &mongoProducts{col: db.Collection(colProducts)},
		Cart:     &mongoCart{col: db.Collection(colCart)},
		Wishlist: &mongoWishlist{col: db.Collection(colWishlist)},
		Users:    &mongoUsers{col: db.Collection(colUsers)},
		Orders:   &mongoOrders{col: db.Collection(colOrders)},
		Contact:  &mongoContact{col: db.Collection(colContact)},
	}, nil
}
