package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"tiki-sentiment-scraper/models"
)

// ReadProducts loads a persisted product table from a plain CSV file for
// the enrichment pass. Column order is taken from the header row; a
// missing product_id column is an error, while missing optional columns
// (image_url, category_name among them) default every row to empty.
func ReadProducts(path string) ([]*models.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("csv: read %q: %w", path, err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv: %q has no header row", path)
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[name] = i
	}
	if _, ok := cols["product_id"]; !ok {
		return nil, fmt.Errorf("csv: %q has no product_id column", path)
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	products := make([]*models.Product, 0, len(records)-1)
	for _, row := range records[1:] {
		price, _ := strconv.ParseInt(field(row, "price"), 10, 64)
		original, _ := strconv.ParseInt(field(row, "original_price"), 10, 64)
		discount, _ := strconv.Atoi(field(row, "discount_rate"))
		rating, _ := strconv.ParseFloat(field(row, "rating_average"), 64)
		reviewCount, _ := strconv.Atoi(field(row, "review_count"))

		products = append(products, &models.Product{
			ProductID:        field(row, "product_id"),
			Name:             field(row, "name"),
			ShortDescription: field(row, "short_description"),
			Price:            price,
			OriginalPrice:    original,
			DiscountRate:     discount,
			RatingAverage:    rating,
			ReviewCount:      reviewCount,
			CategoryName:     field(row, "category_name"),
			BrandName:        field(row, "brand_name"),
			URL:              field(row, "url"),
			ImageURL:         field(row, "image_url"),
		})
	}
	return products, nil
}

// WriteProducts overwrites path with the full product table, all columns
// present. Used to persist the result of an enrichment pass.
func WriteProducts(path string, products []*models.Product) error {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, productRow(p))
	}
	return writeCSV(path, productColumns, rows)
}
