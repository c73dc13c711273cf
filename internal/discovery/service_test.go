package discovery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkarvonen/cinescope/internal/omdb"
	"github.com/jkarvonen/cinescope/internal/tmdb"
)

func failingServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)
	return server
}

func failingService(t *testing.T) *Service {
	t.Helper()
	server := failingServer(t)
	catalog := tmdb.NewClient("key", tmdb.WithBaseURL(server.URL))
	ratings := omdb.NewClient("key", omdb.WithBaseURL(server.URL))
	return NewService(catalog, ratings)
}

func TestTrendingOffline(t *testing.T) {
	svc := NewService(nil, nil, WithOffline(true))

	movies := svc.Trending(context.Background(), "US")
	require.NotEmpty(t, movies)
	assert.Equal(t, "Inception", movies[0].Title)
	assert.Equal(t, "US", movies[0].Region)
}

func TestTrendingDefaultsRegion(t *testing.T) {
	svc := NewService(nil, nil)

	movies := svc.Trending(context.Background(), "")
	require.NotEmpty(t, movies)
	assert.Equal(t, "US", movies[0].Region)
}

func TestTrendingProviderFailureFallsBack(t *testing.T) {
	svc := failingService(t)

	movies := svc.Trending(context.Background(), "IN")
	require.NotEmpty(t, movies)
	assert.Equal(t, "IN", movies[0].Region)
}

func TestSearchShortQuery(t *testing.T) {
	svc := failingService(t)

	assert.Empty(t, svc.Search(context.Background(), "a", "US"))
	assert.Empty(t, svc.Search(context.Background(), "", "US"))
}

func TestSearchOffline(t *testing.T) {
	svc := NewService(nil, nil, WithOffline(true))

	results := svc.Search(context.Background(), "inter", "US")
	require.Len(t, results, 1)
	assert.Equal(t, "Interstellar", results[0].Title)
}

func TestSearchProviderFailureFallsBack(t *testing.T) {
	svc := failingService(t)

	results := svc.Search(context.Background(), "dark", "US")
	require.Len(t, results, 1)
	assert.Equal(t, "The Dark Knight", results[0].Title)
}

func TestDetailsOffline(t *testing.T) {
	svc := NewService(nil, nil, WithOffline(true))

	details := svc.Details(context.Background(), 2, "GB")
	require.NotNil(t, details)
	assert.Equal(t, "The Dark Knight", details.Title)
	assert.Equal(t, "GB", details.Region)
}

func TestRatingsProviderFailureFallsBack(t *testing.T) {
	svc := failingService(t)

	record := svc.Ratings(context.Background(), "tt1375666")
	require.NotNil(t, record)
	assert.Equal(t, "tt1375666", record.ImdbID)
}

func TestCombinedOffline(t *testing.T) {
	svc := NewService(nil, nil, WithOffline(true))

	combined := svc.Combined(context.Background(), 1, "US")
	require.NotNil(t, combined)

	assert.Equal(t, "Inception", combined.TMDB.Title)
	assert.Equal(t, "tt1375666", combined.OMDB.ImdbID)
	assert.Equal(t, 8.3, combined.AggregateRating)
	assert.Equal(t, "US", combined.Region)
	assert.NotEmpty(t, combined.Analysis.Verdict)
	assert.Len(t, combined.Analysis.Pros, 4)
	assert.Len(t, combined.Analysis.Cons, 3)
	assert.Equal(t, "$292,587,330", combined.RegionalData.LocalBoxOffice)
}

func TestCombinedProviderFailureStillTotal(t *testing.T) {
	svc := failingService(t)

	combined := svc.Combined(context.Background(), 1, "")
	require.NotNil(t, combined)
	assert.Equal(t, "US", combined.Region)
	assert.NotNil(t, combined.TMDB)
	assert.NotNil(t, combined.OMDB)
}

func TestRegionalDataFromReleases(t *testing.T) {
	details := &tmdb.MovieDetails{
		RegionalReleases: []tmdb.RegionalRelease{
			{RegionCode: "US", ReleaseDate: "2010-07-16", Certification: "PG-13"},
			{RegionCode: "FR", ReleaseDate: "2010-07-21", Certification: "U", LocalTitle: "Inception"},
		},
	}
	ratings := &omdb.OMDBResponse{BoxOffice: "$100"}

	data := regionalData(details, ratings, "FR")
	assert.Equal(t, "2010-07-21", data.LocalReleaseDate)
	assert.Equal(t, "U", data.LocalCertification)
	assert.Equal(t, "Inception", data.LocalTitle)
	assert.Equal(t, "$100", data.LocalBoxOffice)

	// No entry for the region leaves the release fields empty.
	data = regionalData(details, ratings, "JP")
	assert.Empty(t, data.LocalReleaseDate)
	assert.Equal(t, "$100", data.LocalBoxOffice)
}
