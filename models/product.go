package models

// Product is one structured record built from the product-detail API.
// Every field except ProductID defaults to empty/zero when the source
// omits it; a record is never discarded for missing optional fields.
type Product struct {
	ProductID        string  `json:"product_id"`
	Name             string  `json:"name"`
	ShortDescription string  `json:"short_description"`
	Price            int64   `json:"price"`
	OriginalPrice    int64   `json:"original_price"`
	DiscountRate     int     `json:"discount_rate"`
	RatingAverage    float64 `json:"rating_average"`
	ReviewCount      int     `json:"review_count"`
	CategoryName     string  `json:"category_name"`
	BrandName        string  `json:"brand_name"`
	URL              string  `json:"url"`
	ImageURL         string  `json:"image_url"`
}

// SearchResult is the product summary returned by keyword search.
type SearchResult struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	Price         int64   `json:"price"`
	RatingAverage float64 `json:"rating_average"`
	ReviewCount   int     `json:"review_count"`
	URL           string  `json:"url"`
}
