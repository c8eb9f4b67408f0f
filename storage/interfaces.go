package storage

import "tiki-sentiment-scraper/models"

// DatasetWriter is the interface any dataset sink must satisfy.
type DatasetWriter interface {
	WriteProducts(products []*models.Product) error
	WriteReviews(reviews []*models.Review) error
	Close() error
}

// productColumns and reviewColumns define the tabular layout shared by
// every sink, in the order rows are written.
var productColumns = []string{
	"product_id", "name", "short_description", "price", "original_price",
	"discount_rate", "rating_average", "review_count", "category_name",
	"brand_name", "url", "image_url",
}

var reviewColumns = []string{
	"review_id", "title", "content", "rating", "created_at",
	"customer_name", "product_id", "is_verified", "number_of_likes",
	"number_of_replies", "sentiment",
}
