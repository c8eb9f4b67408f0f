package tiki

import (
	"strconv"

	"tiki-sentiment-scraper/models"
)

const (
	reviewPageSize = 20
	reviewInclude  = "comments,contribute_info,attribute_vote_summary"
)

// reviewsPage mirrors one page of the reviews API response.
type reviewsPage struct {
	Data   []models.RawReview `json:"data"`
	Paging struct {
		LastPage int `json:"last_page"`
	} `json:"paging"`
}

// FetchReviews collects raw review entries for a product, page by page in
// increasing page order, capped at limit. The total page count is unknown
// until the first response arrives and is refreshed from every page.
//
// A mid-pagination failure terminates the loop: whatever was accumulated
// is returned alongside the error, so one bad page never costs the whole
// product.
func (c *Client) FetchReviews(productID string, limit int) ([]models.RawReview, error) {
	if limit <= 0 {
		return nil, nil
	}

	var reviews []models.RawReview
	page := 1
	lastPage := 1

	for page <= lastPage && len(reviews) < limit {
		params := map[string]string{
			"product_id": productID,
			"page":       strconv.Itoa(page),
			"limit":      strconv.Itoa(reviewPageSize),
			"include":    reviewInclude,
		}

		var body reviewsPage
		if err := c.GetJSON(reviewsAPIPath, params, &body); err != nil {
			return reviews, err
		}

		lastPage = body.Paging.LastPage
		if lastPage < 1 {
			lastPage = 1
		}

		reviews = append(reviews, body.Data...)
		page++
	}

	// The final page may overshoot the cap.
	if len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews, nil
}
