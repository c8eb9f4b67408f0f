package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"tiki-sentiment-scraper/models"
)

// utf8BOM is prepended to every CSV file so spreadsheet tools detect the
// encoding and render Vietnamese text correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter writes the dataset tables to timestamped CSV files in one
// output directory. Both tables of a run share the same timestamp.
type CSVWriter struct {
	dir       string
	timestamp string
}

// NewCSVWriter creates the output directory if needed and fixes the
// timestamp used for this run's file names.
func NewCSVWriter(dir string) (*CSVWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}
	return &CSVWriter{dir: dir, timestamp: time.Now().Format("20060102_150405")}, nil
}

// ProductsPath returns the file this run's product table is written to.
func (c *CSVWriter) ProductsPath() string {
	return filepath.Join(c.dir, "tiki_products_"+c.timestamp+".csv")
}

// ReviewsPath returns the file this run's review table is written to.
func (c *CSVWriter) ReviewsPath() string {
	return filepath.Join(c.dir, "tiki_reviews_"+c.timestamp+".csv")
}

func (c *CSVWriter) WriteProducts(products []*models.Product) error {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, productRow(p))
	}
	return writeCSV(c.ProductsPath(), productColumns, rows)
}

func (c *CSVWriter) WriteReviews(reviews []*models.Review) error {
	rows := make([][]string, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, reviewRow(r))
	}
	return writeCSV(c.ReviewsPath(), reviewColumns, rows)
}

// Close is a no-op; each write opens and closes its own file.
func (c *CSVWriter) Close() error { return nil }

func productRow(p *models.Product) []string {
	return []string{
		p.ProductID,
		p.Name,
		p.ShortDescription,
		strconv.FormatInt(p.Price, 10),
		strconv.FormatInt(p.OriginalPrice, 10),
		strconv.Itoa(p.DiscountRate),
		strconv.FormatFloat(p.RatingAverage, 'f', -1, 64),
		strconv.Itoa(p.ReviewCount),
		p.CategoryName,
		p.BrandName,
		p.URL,
		p.ImageURL,
	}
}

func reviewRow(r *models.Review) []string {
	return []string{
		strconv.FormatInt(r.ReviewID, 10),
		r.Title,
		r.Content,
		strconv.Itoa(r.Rating),
		strconv.FormatInt(r.CreatedAt, 10),
		r.CustomerName,
		r.ProductID,
		strconv.FormatBool(r.IsVerified),
		strconv.Itoa(r.Likes),
		strconv.Itoa(r.Replies),
		r.Sentiment,
	}
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("csv: write BOM: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
