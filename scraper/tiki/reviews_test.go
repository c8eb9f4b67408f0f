package tiki

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// reviewsHandler serves fixed-size pages of synthetic reviews. Pages in
// failPages respond with a 500.
func reviewsHandler(t *testing.T, perPage, lastPage int, failPages map[int]bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v2/reviews", r.URL.Path)
		require.NotEmpty(t, r.URL.Query().Get("product_id"))
		require.Equal(t, reviewInclude, r.URL.Query().Get("include"))

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		require.NoError(t, err)

		if failPages[page] {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		type entry struct {
			ID        int64 `json:"id"`
			Rating    int   `json:"rating"`
			ProductID int64 `json:"product_id"`
		}
		data := make([]entry, 0, perPage)
		for i := 0; i < perPage; i++ {
			data = append(data, entry{
				ID:        int64((page-1)*perPage + i + 1),
				Rating:    i%5 + 1,
				ProductID: 1234,
			})
		}

		body := map[string]any{
			"data":   data,
			"paging": map[string]any{"last_page": lastPage},
		}
		require.NoError(t, json.NewEncoder(w).Encode(body))
	}
}

func TestFetchReviewsPaginatesInOrder(t *testing.T) {
	server := httptest.NewServer(reviewsHandler(t, 20, 3, nil))
	defer server.Close()

	reviews, err := newTestClient(t, server.URL).FetchReviews("1234", 500)
	require.NoError(t, err)
	require.Len(t, reviews, 60)

	// Entries are concatenated in increasing page order.
	for i, r := range reviews {
		require.Equal(t, int64(i+1), r.ID)
	}
}

func TestFetchReviewsNeverExceedsLimit(t *testing.T) {
	server := httptest.NewServer(reviewsHandler(t, 20, 5, nil))
	defer server.Close()

	client := newTestClient(t, server.URL)

	for _, limit := range []int{0, 1, 19, 20, 25, 100} {
		reviews, err := client.FetchReviews("1234", limit)
		require.NoError(t, err)
		require.LessOrEqual(t, len(reviews), limit, "limit %d", limit)
	}

	// The final page overshoots a limit of 25 by 15 entries.
	reviews, err := client.FetchReviews("1234", 25)
	require.NoError(t, err)
	require.Len(t, reviews, 25)
}

func TestFetchReviewsPartialOnMidPaginationFailure(t *testing.T) {
	server := httptest.NewServer(reviewsHandler(t, 20, 2, map[int]bool{2: true}))
	defer server.Close()

	reviews, err := newTestClient(t, server.URL).FetchReviews("1234", 500)
	require.Error(t, err, "the page failure is reported")
	require.Len(t, reviews, 20, "page 1 results survive the page 2 failure")
}

func TestFetchReviewsZeroLimitMakesNoRequests(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	reviews, err := newTestClient(t, server.URL).FetchReviews("1234", 0)
	require.NoError(t, err)
	require.Empty(t, reviews)
	require.Zero(t, calls)
}
