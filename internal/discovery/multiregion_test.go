package discovery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendingByRegion(t *testing.T) {
	svc := NewService(nil, nil, WithOffline(true))

	codes := []string{"US", "IN", "KR"}
	results := svc.TrendingByRegion(context.Background(), codes)
	require.Len(t, results, 3)

	for _, code := range codes {
		movies, ok := results[code]
		require.True(t, ok, "missing region %s", code)
		require.NotEmpty(t, movies)
		assert.Equal(t, code, movies[0].Region)
	}

	// Regional extras show up only for their own region.
	assert.Len(t, results["IN"], len(results["US"])+1)
}

func TestTrendingByRegionEmptyCodes(t *testing.T) {
	svc := NewService(nil, nil, WithOffline(true))

	results := svc.TrendingByRegion(context.Background(), nil)
	require.Len(t, results, 1)
	assert.Contains(t, results, "US")
}

func TestTrendingByRegionProviderFailure(t *testing.T) {
	svc := failingService(t)

	results := svc.TrendingByRegion(context.Background(), []string{"US", "JP", "FR"})
	require.Len(t, results, 3)
	for code, movies := range results {
		assert.NotEmpty(t, movies, "region %s", code)
	}
}

func TestSearchByRegion(t *testing.T) {
	svc := NewService(nil, nil, WithOffline(true))

	results := svc.SearchByRegion(context.Background(), "dark", []string{"US", "IN"})
	require.Len(t, results, 2)
	require.Len(t, results["US"], 1)
	assert.Equal(t, "The Dark Knight", results["US"][0].Title)
}

func TestDetailsByRegion(t *testing.T) {
	svc := NewService(nil, nil, WithOffline(true))

	results := svc.DetailsByRegion(context.Background(), 1, []string{"US", "JP"})
	require.Len(t, results, 2)
	assert.Equal(t, "US", results["US"].Region)
	assert.Equal(t, "JP", results["JP"].Region)
}

func TestFanOutLargeRegionSet(t *testing.T) {
	svc := NewService(nil, nil, WithOffline(true))

	codes := []string{"US", "GB", "CA", "AU", "IN", "JP", "KR", "FR", "DE", "IT", "ES", "BR"}
	results := svc.TrendingByRegion(context.Background(), codes)
	require.Len(t, results, len(codes))
}
