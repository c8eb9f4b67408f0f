package services

import (
	"strconv"

	"tiki-sentiment-scraper/models"
	"tiki-sentiment-scraper/utils"
)

// Labeler maps raw review entries to labeled dataset records.
type Labeler struct {
	logger *utils.Logger
}

// NewLabeler creates a Labeler with the given logger.
func NewLabeler(logger *utils.Logger) *Labeler {
	return &Labeler{logger: logger}
}

// LabelSentiment returns the sentiment class for a star rating:
// >= 4 positive, <= 2 negative, 3 neutral.
func LabelSentiment(rating int) string {
	switch {
	case rating >= 4:
		return models.SentimentPositive
	case rating <= 2:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// Label converts one raw entry into a labeled Review. The second return
// value is false for malformed entries (missing identifier or a rating
// outside the 1–5 star scale), which the caller should drop.
func (l *Labeler) Label(raw models.RawReview) (*models.Review, bool) {
	if raw.ID == 0 {
		l.logger.Warn("[labeler] Skipping review with no identifier (product %d)", raw.ProductID)
		return nil, false
	}
	if raw.Rating < 1 || raw.Rating > 5 {
		l.logger.Warn("[labeler] Skipping review %d with rating %d outside 1–5", raw.ID, raw.Rating)
		return nil, false
	}

	return &models.Review{
		ReviewID:     raw.ID,
		Title:        raw.Title,
		Content:      raw.Content,
		Rating:       raw.Rating,
		CreatedAt:    raw.CreatedAt,
		CustomerName: raw.CreatedBy.Name,
		ProductID:    strconv.FormatInt(raw.ProductID, 10),
		IsVerified:   raw.IsVerified,
		Likes:        raw.Likes,
		Replies:      raw.Replies,
		Sentiment:    LabelSentiment(raw.Rating),
	}, true
}

// LabelAll labels a batch. A single malformed entry is skipped without
// aborting the rest.
func (l *Labeler) LabelAll(raw []models.RawReview) []*models.Review {
	reviews := make([]*models.Review, 0, len(raw))
	for _, r := range raw {
		if review, ok := l.Label(r); ok {
			reviews = append(reviews, review)
		}
	}
	return reviews
}
