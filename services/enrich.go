package services

import (
	"tiki-sentiment-scraper/models"
	"tiki-sentiment-scraper/utils"
)

// Enricher fills missing image_url/category_name fields on an already
// persisted product table by re-fetching product detail. Rows that are
// fully populated are skipped without a network call, so the cost of a
// pass is proportional to the deficit, not the table size.
type Enricher struct {
	products ProductFetcher
	logger   *utils.Logger
	pauser   *utils.Pauser
}

// NewEnricher creates an Enricher. The pauser spaces out successive
// network calls and may be nil in tests.
func NewEnricher(products ProductFetcher, pauser *utils.Pauser, logger *utils.Logger) *Enricher {
	return &Enricher{products: products, logger: logger, pauser: pauser}
}

// Enrich mutates rows in place and returns the number of rows filled.
// A failed fetch leaves the row's empty fields empty; the pass continues.
func (e *Enricher) Enrich(rows []*models.Product) int {
	deficit := 0
	filled := 0

	for _, row := range rows {
		if row.ImageURL != "" && row.CategoryName != "" {
			continue
		}
		deficit++

		detail, err := e.products.FetchProduct(row.ProductID)
		if err != nil {
			e.logger.Warn("[enrich] Product %s not enriched: %v", row.ProductID, err)
		} else {
			row.ImageURL = detail.ImageURL
			row.CategoryName = detail.CategoryName
			filled++
		}

		if e.pauser != nil {
			e.pauser.Pause()
		}
	}

	e.logger.Info("[enrich] %d/%d rows needed enrichment, %d filled", deficit, len(rows), filled)
	return filled
}
