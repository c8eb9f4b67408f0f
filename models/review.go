package models

// Sentiment labels derived from star ratings. The mapping is the
// dataset's ground truth: rating >= 4 positive, <= 2 negative, 3 neutral.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// RawReview holds one unprocessed review entry exactly as the reviews
// API returns it, before labeling.
type RawReview struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Rating    int    `json:"rating"`
	CreatedAt int64  `json:"created_at"`
	CreatedBy struct {
		Name string `json:"name"`
	} `json:"created_by"`
	ProductID  int64 `json:"product_id"`
	IsVerified bool  `json:"is_verified"`
	Likes      int   `json:"number_of_likes"`
	Replies    int   `json:"number_of_replies"`
}

// Review is the labeled record ready for the dataset. Immutable once built.
type Review struct {
	ReviewID     int64  `json:"review_id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	Rating       int    `json:"rating"`
	CreatedAt    int64  `json:"created_at"`
	CustomerName string `json:"customer_name"`
	ProductID    string `json:"product_id"`
	IsVerified   bool   `json:"is_verified"`
	Likes        int    `json:"number_of_likes"`
	Replies      int    `json:"number_of_replies"`
	Sentiment    string `json:"sentiment"`
}
