package tiki

import (
	"errors"
	"net/http"

	"tiki-sentiment-scraper/models"
)

// ErrNotFound is returned when the site has no product for an identifier.
// Callers must treat absence distinctly from an empty-but-present record.
var ErrNotFound = errors.New("product not found")

// productDetail mirrors the product-detail API response. Nested objects
// can be missing entirely, hence the pointer fields.
type productDetail struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	ShortDescription string  `json:"short_description"`
	Price            int64   `json:"price"`
	OriginalPrice    int64   `json:"original_price"`
	DiscountRate     int     `json:"discount_rate"`
	RatingAverage    float64 `json:"rating_average"`
	ReviewCount      int     `json:"review_count"`
	Categories       *struct {
		Name string `json:"name"`
	} `json:"categories"`
	Brand *struct {
		Name string `json:"name"`
	} `json:"brand"`
	Breadcrumbs []struct {
		Name string `json:"name"`
	} `json:"breadcrumbs"`
	URLPath      string `json:"url_path"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// categoryName resolves the category label: the categories object's name
// when present, otherwise the first breadcrumb, otherwise empty.
func (d *productDetail) categoryName() string {
	if d.Categories != nil && d.Categories.Name != "" {
		return d.Categories.Name
	}
	if len(d.Breadcrumbs) > 0 {
		return d.Breadcrumbs[0].Name
	}
	return ""
}

// FetchProduct resolves a product identifier to a structured record via
// one call to the product-detail endpoint. A missing nested object at
// any level degrades to empty/zero fields; the record itself is always
// produced on a 2xx response.
func (c *Client) FetchProduct(productID string) (*models.Product, error) {
	var detail productDetail
	if err := c.GetJSON(productAPIPath+"/"+productID, nil, &detail); err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	product := &models.Product{
		ProductID:        productID,
		Name:             detail.Name,
		ShortDescription: detail.ShortDescription,
		Price:            detail.Price,
		OriginalPrice:    detail.OriginalPrice,
		DiscountRate:     detail.DiscountRate,
		RatingAverage:    detail.RatingAverage,
		ReviewCount:      detail.ReviewCount,
		CategoryName:     detail.categoryName(),
		URL:              detail.URLPath,
		ImageURL:         detail.ThumbnailURL,
	}
	if detail.Brand != nil {
		product.BrandName = detail.Brand.Name
	}
	return product, nil
}
