package services

import (
	"fmt"
	"testing"

	"tiki-sentiment-scraper/models"
)

// unbalancedReviews builds a table with 5 positive, 3 negative and
// 2 neutral rows.
func unbalancedReviews() []*models.Review {
	var reviews []*models.Review
	add := func(n int, rating int, sentiment string) {
		for i := 0; i < n; i++ {
			reviews = append(reviews, &models.Review{
				ReviewID:  int64(len(reviews) + 1),
				Rating:    rating,
				Sentiment: sentiment,
			})
		}
	}
	add(5, 5, models.SentimentPositive)
	add(3, 1, models.SentimentNegative)
	add(2, 3, models.SentimentNeutral)
	return reviews
}

func countBySentiment(reviews []*models.Review) map[string]int {
	counts := make(map[string]int)
	for _, r := range reviews {
		counts[r.Sentiment]++
	}
	return counts
}

func TestBalanceEqualClassCounts(t *testing.T) {
	b := NewBalancer(newTestLogger(), 7)
	balanced := b.Balance(unbalancedReviews())

	counts := countBySentiment(balanced)
	if len(counts) != 3 {
		t.Fatalf("expected 3 classes, got %d", len(counts))
	}
	for class, count := range counts {
		if count != 2 {
			t.Errorf("class %q: got %d rows, want 2 (the minimum class count)", class, count)
		}
	}
	if len(balanced) != 6 {
		t.Errorf("total rows: got %d, want 6 (min count × classes)", len(balanced))
	}
}

func TestBalanceGroupsByClass(t *testing.T) {
	b := NewBalancer(newTestLogger(), 7)
	balanced := b.Balance(unbalancedReviews())

	// Sorted class order: negative, neutral, positive.
	wantOrder := []string{
		models.SentimentNegative, models.SentimentNegative,
		models.SentimentNeutral, models.SentimentNeutral,
		models.SentimentPositive, models.SentimentPositive,
	}
	for i, r := range balanced {
		if r.Sentiment != wantOrder[i] {
			t.Fatalf("row %d: got class %q, want %q", i, r.Sentiment, wantOrder[i])
		}
	}
}

func TestBalanceDeterministicUnderSeed(t *testing.T) {
	first := NewBalancer(newTestLogger(), 99).Balance(unbalancedReviews())
	second := NewBalancer(newTestLogger(), 99).Balance(unbalancedReviews())

	key := func(reviews []*models.Review) string {
		s := ""
		for _, r := range reviews {
			s += fmt.Sprintf("%d,", r.ReviewID)
		}
		return s
	}
	if key(first) != key(second) {
		t.Errorf("same seed produced different samples:\n%s\n%s", key(first), key(second))
	}
}

func TestBalanceSingleClass(t *testing.T) {
	reviews := []*models.Review{
		{ReviewID: 1, Sentiment: models.SentimentPositive},
		{ReviewID: 2, Sentiment: models.SentimentPositive},
	}
	balanced := NewBalancer(newTestLogger(), 1).Balance(reviews)
	if len(balanced) != 2 {
		t.Errorf("single class should pass through: got %d rows, want 2", len(balanced))
	}
}

func TestBalanceEmptyInput(t *testing.T) {
	if got := NewBalancer(newTestLogger(), 1).Balance(nil); len(got) != 0 {
		t.Errorf("expected empty output for empty input, got %d rows", len(got))
	}
}
