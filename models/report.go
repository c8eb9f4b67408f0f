package models

// RunReport holds the summary statistics printed after a collect run.
type RunReport struct {
	TotalProducts   int
	TotalReviews    int
	VerifiedReviews int

	SentimentCounts map[string]int
	RatingCounts    map[int]int
	TopCategories   map[string]int

	AverageRating float64
	AveragePrice  float64
}
