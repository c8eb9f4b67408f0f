package tiki

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchProductsMapsResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v2/products", r.URL.Path)
		require.Equal(t, "laptop gaming", r.URL.Query().Get("q"))
		require.Equal(t, "50", r.URL.Query().Get("limit"))

		w.Write([]byte(`{"data": [
			{"id": 111, "name": "Laptop A", "price": 15000000,
			 "rating_average": 4.2, "review_count": 35, "url_path": "laptop-a-p111.html"},
			{"id": 222, "name": "Laptop B", "price": 22000000,
			 "rating_average": 4.8, "review_count": 120, "url_path": "laptop-b-p222.html"}
		]}`))
	}))
	defer server.Close()

	results, err := newTestClient(t, server.URL).SearchProducts("laptop gaming", 50)
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Equal(t, "111", results[0].ProductID)
	require.Equal(t, "Laptop A", results[0].Name)
	require.Equal(t, int64(15000000), results[0].Price)
	require.Equal(t, 4.8, results[1].RatingAverage)
	require.Equal(t, 120, results[1].ReviewCount)
}

func TestSearchProductsEmptyOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	results, err := newTestClient(t, server.URL).SearchProducts("tivi", 10)
	require.Error(t, err)
	require.Empty(t, results)
}
