package models

// WishlistKey identifies one wishlist row.
type WishlistKey struct {
	UserID string
	ItemID string
}

// WishlistItem is an existence-only record; there is no quantity.
type WishlistItem struct {
	UserID string `json:"user_id" bson:"user_id"`
	ItemID string `json:"item_id" bson:"item_id"`
}

// Key returns the composite map key for this row.
func (w WishlistItem) Key() WishlistKey {
	return WishlistKey{UserID: w.UserID, ItemID: w.ItemID}
}

// WishlistLine is a wishlist row joined against the catalogue for display.
type WishlistLine struct {
	ItemID   string  `json:"item_id"`
	ItemName string  `json:"item_name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}
