package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jkarvonen/cinescope/internal/omdb"
)

func TestAggregateRating(t *testing.T) {
	ratings := []omdb.Rating{
		{Source: "Internet Movie Database", Value: "8.8/10"},
		{Source: "Rotten Tomatoes", Value: "87%"},
		{Source: "Metacritic", Value: "74/100"},
	}
	// (8.8 + 8.7 + 7.4) / 3
	assert.Equal(t, 8.3, AggregateRating(ratings, 8.4))
}

func TestAggregateRatingEmptyFallsBackToVoteAverage(t *testing.T) {
	assert.Equal(t, 4.2, AggregateRating(nil, 8.4))
	assert.Equal(t, 4.2, AggregateRating([]omdb.Rating{}, 8.4))
}

func TestAggregateRatingUnknownSourceDilutesScore(t *testing.T) {
	ratings := []omdb.Rating{
		{Source: "Internet Movie Database", Value: "8.0/10"},
		{Source: "Some Other Aggregator", Value: "9/10"},
	}
	// Unknown sources add nothing but still count in the divisor.
	assert.Equal(t, 4.0, AggregateRating(ratings, 7.0))
}

func TestAggregateRatingMalformedValues(t *testing.T) {
	ratings := []omdb.Rating{
		{Source: "Internet Movie Database", Value: "N/A"},
		{Source: "Rotten Tomatoes", Value: "90%"},
	}
	assert.Equal(t, 4.5, AggregateRating(ratings, 8.0))
}
