package services

import (
	"tiki-sentiment-scraper/models"
	"tiki-sentiment-scraper/utils"
)

// ProductFetcher resolves one product identifier to a full record.
type ProductFetcher interface {
	FetchProduct(productID string) (*models.Product, error)
}

// ReviewFetcher collects up to limit raw review entries for one product.
// A non-nil error may still carry partial results.
type ReviewFetcher interface {
	FetchReviews(productID string, limit int) ([]models.RawReview, error)
}

// Assembler builds the two dataset tables from a set of product
// identifiers, one product at a time. Per-product failures are logged
// and skipped; a long batch always runs to the end.
type Assembler struct {
	products ProductFetcher
	reviews  ReviewFetcher
	labeler  *Labeler
	logger   *utils.Logger

	// ProgressEvery controls how often batch progress is logged.
	ProgressEvery int
	// Pauser, when set, sleeps between products to avoid rate limiting.
	Pauser *utils.Pauser
}

// NewAssembler creates an Assembler over the given fetchers. The review
// fetcher may be nil when only the product table is wanted.
func NewAssembler(products ProductFetcher, reviews ReviewFetcher, logger *utils.Logger) *Assembler {
	return &Assembler{
		products:      products,
		reviews:       reviews,
		labeler:       NewLabeler(logger),
		logger:        logger,
		ProgressEvery: 10,
	}
}

// Assemble processes identifiers sequentially in input order and returns
// the review and product tables. Review collection is skipped entirely
// when reviewsPerProduct is zero or no review fetcher is configured.
func (a *Assembler) Assemble(productIDs []string, reviewsPerProduct int) ([]*models.Review, []*models.Product) {
	var allReviews []*models.Review
	products := make([]*models.Product, 0, len(productIDs))

	total := len(productIDs)
	a.logger.Info("[assembler] Building dataset from %d products (reviews/product: %d)",
		total, reviewsPerProduct)

	for i, id := range productIDs {
		product, err := a.products.FetchProduct(id)
		if err != nil {
			a.logger.Warn("[assembler] Product %s skipped: %v", id, err)
		} else {
			products = append(products, product)

			if reviewsPerProduct > 0 && a.reviews != nil {
				raw, err := a.reviews.FetchReviews(id, reviewsPerProduct)
				if err != nil {
					a.logger.Warn("[assembler] Reviews for product %s incomplete: %v (keeping %d)",
						id, err, len(raw))
				}
				allReviews = append(allReviews, a.labeler.LabelAll(raw)...)
			}
		}

		done := i + 1
		if a.ProgressEvery > 0 && (done%a.ProgressEvery == 0 || done == total) {
			a.logger.Info("[assembler] %d/%d products processed — %d records, %d reviews",
				done, total, len(products), len(allReviews))
		}

		if a.Pauser != nil && done < total {
			a.Pauser.Pause()
		}
	}

	return allReviews, products
}
