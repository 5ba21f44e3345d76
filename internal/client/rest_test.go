package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomarket/internal/domain/entity"
	apperrors "gomarket/pkg/errors"
)

func TestRestClientList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/products", r.URL.Path)
		assert.Equal(t, "phone", r.URL.Query().Get("search"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "session-a", r.Header.Get("X-Session-ID"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"items":       []map[string]interface{}{{"id": "p1", "title": "Phone"}},
				"total":       25,
				"currentPage": 2,
				"totalPages":  3,
			},
		})
	}))
	defer srv.Close()

	c := NewRestClient(srv.URL, "test-token", "session-a")
	page, err := c.List(context.Background(), entity.ListingQuery{Search: "phone", Page: 2, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "p1", page.Items[0].ID)
}

func TestRestClientDecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   map[string]string{"code": "STORE_UNAVAILABLE", "message": "Store is temporarily unavailable"},
		})
	}))
	defer srv.Close()

	c := NewRestClient(srv.URL, "", "")
	err := c.AddFavorite(context.Background(), "prod-1")
	assert.True(t, apperrors.Is(err, "STORE_UNAVAILABLE"))
}

func TestRestClientFallsBackOnBareStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewRestClient(srv.URL, "", "")
	err := c.AddFavorite(context.Background(), "missing")
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestRestClientNetworkFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := NewRestClient(srv.URL, "", "")
	err := c.RemoveFavorite(context.Background(), "prod-1")
	assert.True(t, apperrors.Is(err, "STORE_UNAVAILABLE"))
}

func TestRestClientFetchFavorites(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/me", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"user":      map[string]string{"id": "user-1"},
				"favorites": []string{"p1", "p2"},
			},
		})
	}))
	defer srv.Close()

	c := NewRestClient(srv.URL, "test-token", "")
	favorites, err := c.FetchFavorites(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, favorites)
}
