package models

import "time"

// Customer is the delivery contact captured at checkout.
type Customer struct {
	Name    string `json:"name"    bson:"name"`
	Address string `json:"address" bson:"address"`
	Email   string `json:"email"   bson:"email"`
	Phone   string `json:"phone"   bson:"phone"`
}

// Order is one placed order. Orders are append-only: nothing mutates an
// order after it has been created.
type Order struct {
	ID       string     `json:"order_id"  bson:"order_id"`
	Customer Customer   `json:"customer"  bson:"customer"`
	Items    []CartItem `json:"items"     bson:"items"`
	Total    float64    `json:"total"     bson:"total"`
	PlacedAt time.Time  `json:"placed_at" bson:"placed_at"`
}
