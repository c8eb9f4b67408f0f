package tiki

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// categorySelector matches the product-card containers on a category
// listing page. The page structure is an external contract versioned by
// the site; when it changes, this is the only line that should need to.
const categorySelector = `div[data-view-id="product_list_container"] > div`

// CategoryProductIDs resolves a category listing page to product
// identifiers. Each product card carries a numeric data-id attribute;
// cards without one (separators, ad slots) are silently skipped. The
// result is truncated to limit.
func (c *Client) CategoryProductIDs(ctx context.Context, categoryPath string, limit int) ([]string, error) {
	html, err := c.categoryHTML(ctx, categoryPath)
	if err != nil {
		return nil, err
	}
	return extractProductIDs(html, limit)
}

func (c *Client) categoryHTML(ctx context.Context, categoryPath string) (string, error) {
	url := c.baseURL + "/" + strings.TrimPrefix(categoryPath, "/")
	if c.render {
		c.logger.Debug("[tiki] rendering category page %s", url)
		return renderPage(ctx, url, c.chromeBin)
	}
	return c.GetHTML("/" + strings.TrimPrefix(categoryPath, "/"))
}

func extractProductIDs(html string, limit int) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse category page: %w", err)
	}

	var ids []string
	doc.Find(categorySelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(ids) >= limit {
			return false
		}
		id := sel.AttrOr("data-id", "")
		if id == "" {
			return true
		}
		if _, err := strconv.ParseInt(id, 10, 64); err != nil {
			return true
		}
		ids = append(ids, id)
		return true
	})
	return ids, nil
}
