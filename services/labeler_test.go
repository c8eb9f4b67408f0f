package services

import (
	"testing"

	"tiki-sentiment-scraper/models"
	"tiki-sentiment-scraper/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLogger() }

func TestLabelSentimentExhaustive(t *testing.T) {
	tests := []struct {
		rating int
		want   string
	}{
		{1, models.SentimentNegative},
		{2, models.SentimentNegative},
		{3, models.SentimentNeutral},
		{4, models.SentimentPositive},
		{5, models.SentimentPositive},
	}

	for _, tt := range tests {
		got := LabelSentiment(tt.rating)
		if got != tt.want {
			t.Errorf("LabelSentiment(%d) = %q; want %q", tt.rating, got, tt.want)
		}
	}
}

func TestLabelBuildsRecord(t *testing.T) {
	l := NewLabeler(newTestLogger())

	raw := models.RawReview{
		ID:         42,
		Title:      "Tuyệt vời",
		Content:    "Sản phẩm rất tốt",
		Rating:     5,
		CreatedAt:  1700000000,
		ProductID:  1234,
		IsVerified: true,
		Likes:      3,
		Replies:    1,
	}
	raw.CreatedBy.Name = "Minh"

	review, ok := l.Label(raw)
	if !ok {
		t.Fatal("Label should accept a well-formed entry")
	}
	if review.ReviewID != 42 {
		t.Errorf("ReviewID: got %d, want 42", review.ReviewID)
	}
	if review.ProductID != "1234" {
		t.Errorf("ProductID: got %q, want %q", review.ProductID, "1234")
	}
	if review.CustomerName != "Minh" {
		t.Errorf("CustomerName: got %q, want %q", review.CustomerName, "Minh")
	}
	if review.Sentiment != models.SentimentPositive {
		t.Errorf("Sentiment: got %q, want positive", review.Sentiment)
	}
}

func TestLabelSkipsMalformed(t *testing.T) {
	l := NewLabeler(newTestLogger())

	tests := []struct {
		name string
		raw  models.RawReview
	}{
		{"missing id", models.RawReview{Rating: 4}},
		{"rating zero", models.RawReview{ID: 1, Rating: 0}},
		{"rating above scale", models.RawReview{ID: 2, Rating: 6}},
	}

	for _, tt := range tests {
		if _, ok := l.Label(tt.raw); ok {
			t.Errorf("%s: Label should reject entry", tt.name)
		}
	}
}

func TestLabelAllContinuesPastMalformed(t *testing.T) {
	l := NewLabeler(newTestLogger())

	raw := []models.RawReview{
		{ID: 1, Rating: 5, ProductID: 10},
		{ID: 0, Rating: 4, ProductID: 10}, // malformed, skipped
		{ID: 3, Rating: 1, ProductID: 10},
	}

	reviews := l.LabelAll(raw)
	if len(reviews) != 2 {
		t.Fatalf("expected 2 labeled reviews, got %d", len(reviews))
	}
	if reviews[0].Sentiment != models.SentimentPositive || reviews[1].Sentiment != models.SentimentNegative {
		t.Errorf("unexpected labels: %q, %q", reviews[0].Sentiment, reviews[1].Sentiment)
	}
}
