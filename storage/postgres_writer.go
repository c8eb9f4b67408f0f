package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"tiki-sentiment-scraper/models"
)

// PostgresWriter persists the dataset tables to PostgreSQL. Inserts are
// keyed on the site's natural identifiers, so re-running a collection
// accumulates new rows without duplicating old ones.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema
// migrations, and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS products (
			product_id        TEXT PRIMARY KEY,
			name              TEXT NOT NULL DEFAULT '',
			short_description TEXT NOT NULL DEFAULT '',
			price             BIGINT NOT NULL DEFAULT 0,
			original_price    BIGINT NOT NULL DEFAULT 0,
			discount_rate     INT NOT NULL DEFAULT 0,
			rating_average    NUMERIC(4,2) NOT NULL DEFAULT 0,
			review_count      INT NOT NULL DEFAULT 0,
			category_name     TEXT NOT NULL DEFAULT '',
			brand_name        TEXT NOT NULL DEFAULT '',
			url               TEXT NOT NULL DEFAULT '',
			image_url         TEXT NOT NULL DEFAULT '',
			collected_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS reviews (
			review_id         BIGINT PRIMARY KEY,
			title             TEXT NOT NULL DEFAULT '',
			content           TEXT NOT NULL DEFAULT '',
			rating            INT NOT NULL DEFAULT 0,
			created_at        BIGINT NOT NULL DEFAULT 0,
			customer_name     TEXT NOT NULL DEFAULT '',
			product_id        TEXT NOT NULL DEFAULT '',
			is_verified       BOOLEAN NOT NULL DEFAULT FALSE,
			number_of_likes   INT NOT NULL DEFAULT 0,
			number_of_replies INT NOT NULL DEFAULT 0,
			sentiment         VARCHAR(10) NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_reviews_product   ON reviews(product_id);
		CREATE INDEX IF NOT EXISTS idx_reviews_sentiment ON reviews(sentiment);
		CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_name);
	`)
	return err
}

// WriteProducts batch-inserts the product table.
func (pw *PostgresWriter) WriteProducts(products []*models.Product) error {
	const batchSize = 50
	for i := 0; i < len(products); i += batchSize {
		end := i + batchSize
		if end > len(products) {
			end = len(products)
		}
		if err := pw.insertProducts(products[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertProducts(batch []*models.Product) error {
	if len(batch) == 0 {
		return nil
	}

	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*12)

	for idx, p := range batch {
		base := idx * 12
		placeholders := make([]string, 12)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", base+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		valueArgs = append(valueArgs,
			p.ProductID, p.Name, p.ShortDescription, p.Price, p.OriginalPrice,
			p.DiscountRate, p.RatingAverage, p.ReviewCount, p.CategoryName,
			p.BrandName, p.URL, p.ImageURL)
	}

	query := fmt.Sprintf(`
		INSERT INTO products (product_id, name, short_description, price,
			original_price, discount_rate, rating_average, review_count,
			category_name, brand_name, url, image_url)
		VALUES %s
		ON CONFLICT (product_id) DO NOTHING
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

// WriteReviews batch-inserts the review table.
func (pw *PostgresWriter) WriteReviews(reviews []*models.Review) error {
	const batchSize = 50
	for i := 0; i < len(reviews); i += batchSize {
		end := i + batchSize
		if end > len(reviews) {
			end = len(reviews)
		}
		if err := pw.insertReviews(reviews[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertReviews(batch []*models.Review) error {
	if len(batch) == 0 {
		return nil
	}

	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*11)

	for idx, r := range batch {
		base := idx * 11
		placeholders := make([]string, 11)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", base+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		valueArgs = append(valueArgs,
			r.ReviewID, r.Title, r.Content, r.Rating, r.CreatedAt,
			r.CustomerName, r.ProductID, r.IsVerified, r.Likes, r.Replies,
			r.Sentiment)
	}

	query := fmt.Sprintf(`
		INSERT INTO reviews (review_id, title, content, rating, created_at,
			customer_name, product_id, is_verified, number_of_likes,
			number_of_replies, sentiment)
		VALUES %s
		ON CONFLICT (review_id) DO NOTHING
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
