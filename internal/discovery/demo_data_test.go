package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkarvonen/cinescope/internal/region"
)

func TestDemoTrendingCoversEveryRegion(t *testing.T) {
	for _, r := range region.List() {
		movies := demoTrending(r.Code)
		require.NotEmpty(t, movies, "region %s", r.Code)
		for _, movie := range movies {
			assert.Equal(t, r.Code, movie.Region, "region %s movie %d", r.Code, movie.ID)
			assert.NotEmpty(t, movie.Title)
			assert.NotEmpty(t, movie.PosterPath)
		}
	}
}

func TestDemoTrendingRegionalExtra(t *testing.T) {
	in := demoTrending("IN")
	us := demoTrending("US")
	require.Len(t, in, len(us)+1)

	extra := in[len(in)-1]
	assert.NotContains(t, []int{1, 2, 3}, extra.ID)
	assert.NotEmpty(t, extra.OriginalTitle)
	assert.Equal(t, "RRR", extra.Title)
	assert.Equal(t, "IN", extra.Region)
}

func TestDemoSearch(t *testing.T) {
	results := demoSearch("dark", "US")
	require.Len(t, results, 1)
	assert.Equal(t, "The Dark Knight", results[0].Title)

	// Matches on the original-language title too.
	results = demoSearch("기생충", "KR")
	require.Len(t, results, 1)
	assert.Equal(t, "Parasite", results[0].Title)

	assert.Empty(t, demoSearch("zzzz", "US"))
}

func TestDemoDetails(t *testing.T) {
	details := demoDetails(1, "US")
	assert.Equal(t, "Inception", details.Title)
	assert.Equal(t, "US", details.Region)
	assert.NotEmpty(t, details.Genres)
	assert.Equal(t, 148, details.Runtime)
	assert.NotZero(t, details.Budget)

	directors := 0
	for _, crew := range details.Credits.Crew {
		if crew.Job == "Director" {
			directors++
		}
	}
	assert.Equal(t, 1, directors)
}

func TestDemoDetailsRegionalID(t *testing.T) {
	details := demoDetails(101, "IN")
	assert.Equal(t, "RRR", details.Title)
	assert.Equal(t, "IN", details.Region)
}

func TestDemoDetailsUnknownIDFallsBack(t *testing.T) {
	details := demoDetails(99999, "JP")
	assert.Equal(t, "Inception", details.Title)
	assert.Equal(t, "JP", details.Region)
}

func TestDemoRatings(t *testing.T) {
	record := demoRatings()
	assert.Equal(t, "tt1375666", record.ImdbID)
	assert.Equal(t, "True", record.Response)
	require.Len(t, record.Ratings, 3)
	assert.Equal(t, "8.8/10", record.Ratings[0].Value)
}
