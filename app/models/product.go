package models

// Product is one catalogue entry loaded from the product feed.
type Product struct {
	ID          string            `json:"id"          bson:"id"`
	Name        string            `json:"name"        bson:"name"`
	Price       float64           `json:"price"       bson:"price"`
	ImageURL    string            `json:"image_url"   bson:"image_url"`
	BestPrice   bool              `json:"best_price"  bson:"best_price"`
	Images      []string          `json:"images"      bson:"images"`
	Description string            `json:"description" bson:"description"`
	Category    string            `json:"category"    bson:"category"`
	Colors      []string          `json:"colors"      bson:"colors"`
	Storage     []string          `json:"storage"     bson:"storage"`
	Specs       map[string]string `json:"specs"       bson:"specs"`
}

// RowWarning records a product-feed row that could not be ingested cleanly.
// Line counts the header as line 1, so the first data row is line 2.
type RowWarning struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}
