package tiki

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const categoryPage = `<!DOCTYPE html>
<html><body>
<div data-view-id="product_list_container">
	<div data-id="111"><a href="/san-pham-111">Sản phẩm 111</a></div>
	<div data-id="abc"><a href="/khuyen-mai">Banner</a></div>
	<div data-id="222"><a href="/san-pham-222">Sản phẩm 222</a></div>
	<div><a href="/khac">Không có id</a></div>
	<div data-id="333"><a href="/san-pham-333">Sản phẩm 333</a></div>
</div>
<div data-id="999">ngoài container, bị bỏ qua</div>
</body></html>`

func TestExtractProductIDsSkipsNonNumeric(t *testing.T) {
	ids, err := extractProductIDs(categoryPage, 50)
	require.NoError(t, err)
	require.Equal(t, []string{"111", "222", "333"}, ids)
}

func TestExtractProductIDsTruncatesToLimit(t *testing.T) {
	ids, err := extractProductIDs(categoryPage, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"111", "222"}, ids)
}

func TestExtractProductIDsNoContainer(t *testing.T) {
	ids, err := extractProductIDs(`<html><body><p>trang trống</p></body></html>`, 50)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestCategoryProductIDsFetchesListingPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/laptop/c1846", r.URL.Path)
		w.Write([]byte(categoryPage))
	}))
	defer server.Close()

	ids, err := newTestClient(t, server.URL).CategoryProductIDs(context.Background(), "laptop/c1846", 50)
	require.NoError(t, err)
	require.Equal(t, []string{"111", "222", "333"}, ids)
}

func TestCategoryProductIDsEmptyOnHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	ids, err := newTestClient(t, server.URL).CategoryProductIDs(context.Background(), "tivi/c1882", 50)
	require.Error(t, err)
	require.Empty(t, ids)
}
