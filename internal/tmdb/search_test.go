package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMoviesPassesQueryAndRegion(t *testing.T) {
	var capturedQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedQuery = r.URL.Query()
		response := map[string]any{
			"results": []map[string]any{
				{
					"id":                101,
					"title":             "RRR",
					"original_language": "te",
					"original_title":    "రౌద్రం రణం రుధిరం",
					"vote_average":      7.8,
					"vote_count":        1234,
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	defer server.Close()

	client := NewClient("test-api-key", WithBaseURL(server.URL))

	movies, err := client.SearchMovies(context.Background(), "rrr", "IN")
	require.NoError(t, err)
	require.Len(t, movies, 1)

	assert.Equal(t, "RRR", movies[0].Title)
	assert.Equal(t, "రౌద్రం రణం రుధిరం", movies[0].OriginalTitle)
	assert.Equal(t, "IN", movies[0].Region)

	assert.Equal(t, "rrr", capturedQuery.Get("query"))
	assert.Equal(t, "IN", capturedQuery.Get("region"))
	assert.Equal(t, "test-api-key", capturedQuery.Get("api_key"))
}

func TestSearchMoviesEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", WithBaseURL(server.URL))

	movies, err := client.SearchMovies(context.Background(), "no such movie", "US")
	require.NoError(t, err)
	assert.Empty(t, movies)
}
