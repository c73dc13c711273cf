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

func TestTrendingTagsRegion(t *testing.T) {
	var capturedPath string
	var capturedQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedQuery = r.URL.Query()
		response := map[string]any{
			"results": []map[string]any{
				{
					"id":           603,
					"title":        "The Matrix",
					"overview":     "Set in the 22nd century...",
					"poster_path":  "/p96dm7sCMn4VYAStA6siNz30G1r.jpg",
					"release_date": "1999-03-31",
					"vote_average": 8.2,
					"vote_count":   24000,
				},
				{
					"id":           604,
					"title":        "The Matrix Reloaded",
					"vote_average": 7.1,
					"vote_count":   11000,
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	defer server.Close()

	client := NewClient("test-api-key", WithBaseURL(server.URL))

	movies, err := client.Trending(context.Background(), "KR")
	require.NoError(t, err)
	require.Len(t, movies, 2)

	assert.Equal(t, 603, movies[0].ID)
	assert.Equal(t, "The Matrix", movies[0].Title)
	for _, m := range movies {
		assert.Equal(t, "KR", m.Region)
	}

	assert.Equal(t, "/trending/movie/week", capturedPath)
	assert.Equal(t, "test-api-key", capturedQuery.Get("api_key"))
	assert.Equal(t, "KR", capturedQuery.Get("region"))
}

func TestTrendingTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient("test-api-key", WithBaseURL(server.URL))

	_, err := client.Trending(context.Background(), "US")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestTrendingMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": not-json`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", WithBaseURL(server.URL))

	_, err := client.Trending(context.Background(), "US")
	require.Error(t, err)
}
