package tiki

import (
	"strconv"

	"tiki-sentiment-scraper/models"
)

// searchPage mirrors the product-search API response.
type searchPage struct {
	Data []struct {
		ID            int64   `json:"id"`
		Name          string  `json:"name"`
		Price         int64   `json:"price"`
		RatingAverage float64 `json:"rating_average"`
		ReviewCount   int     `json:"review_count"`
		URLPath       string  `json:"url_path"`
	} `json:"data"`
}

// SearchProducts resolves a search keyword to a list of product
// summaries via one API call. Failures return an empty slice and the
// error; the caller decides whether to try the next keyword.
func (c *Client) SearchProducts(keyword string, limit int) ([]models.SearchResult, error) {
	params := map[string]string{
		"limit": strconv.Itoa(limit),
		"q":     keyword,
	}

	var body searchPage
	if err := c.GetJSON(productAPIPath, params, &body); err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(body.Data))
	for _, p := range body.Data {
		results = append(results, models.SearchResult{
			ProductID:     strconv.FormatInt(p.ID, 10),
			Name:          p.Name,
			Price:         p.Price,
			RatingAverage: p.RatingAverage,
			ReviewCount:   p.ReviewCount,
			URL:           p.URLPath,
		})
	}
	return results, nil
}
