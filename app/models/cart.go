package models

// CartKey identifies one cart row. The same product added in a different
// colour or storage variant is a separate row.
type CartKey struct {
	UserID  string
	ItemID  string
	Color   string
	Storage string
}

// CartItem is one row of a user's cart. Price is snapshotted when the row
// is created and never re-read from the catalogue on later updates.
type CartItem struct {
	UserID   string  `json:"user_id"  bson:"user_id"`
	ItemID   string  `json:"item_id"  bson:"item_id"`
	Price    float64 `json:"price"    bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
	Color    string  `json:"color"    bson:"color"`
	Storage  string  `json:"storage"  bson:"storage"`
}

// Key returns the composite map key for this row.
func (c CartItem) Key() CartKey {
	return CartKey{UserID: c.UserID, ItemID: c.ItemID, Color: c.Color, Storage: c.Storage}
}

// CartLine is a cart row joined against the catalogue for display.
type CartLine struct {
	CartItem
	ItemName string `json:"item_name"`
	ImageURL string `json:"image_url"`
}

// CartSnapshot is the full state of one user's cart.
type CartSnapshot struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}
