package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tiki-sentiment-scraper/models"
)

// JSONWriter writes the dataset tables as timestamped JSON record arrays.
// HTML escaping is disabled so Vietnamese text is stored literally.
type JSONWriter struct {
	dir       string
	timestamp string
}

// NewJSONWriter creates the output directory if needed and fixes the
// timestamp used for this run's file names.
func NewJSONWriter(dir string) (*JSONWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("json: create output dir: %w", err)
	}
	return &JSONWriter{dir: dir, timestamp: time.Now().Format("20060102_150405")}, nil
}

// ProductsPath returns the file this run's product table is written to.
func (j *JSONWriter) ProductsPath() string {
	return filepath.Join(j.dir, "tiki_products_"+j.timestamp+".json")
}

// ReviewsPath returns the file this run's review table is written to.
func (j *JSONWriter) ReviewsPath() string {
	return filepath.Join(j.dir, "tiki_reviews_"+j.timestamp+".json")
}

func (j *JSONWriter) WriteProducts(products []*models.Product) error {
	if products == nil {
		products = []*models.Product{}
	}
	return writeJSON(j.ProductsPath(), products)
}

func (j *JSONWriter) WriteReviews(reviews []*models.Review) error {
	if reviews == nil {
		reviews = []*models.Review{}
	}
	return writeJSON(j.ReviewsPath(), reviews)
}

// Close is a no-op; each write opens and closes its own file.
func (j *JSONWriter) Close() error { return nil }

func writeJSON(path string, records any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("json: create file %q: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("json: encode %q: %w", path, err)
	}
	return nil
}
