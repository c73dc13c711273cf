package discovery

import (
	"math"
	"strconv"
	"strings"

	"github.com/jkarvonen/cinescope/internal/omdb"
)

// Rating source names as OMDb reports them.
const (
	sourceIMDB           = "Internet Movie Database"
	sourceRottenTomatoes = "Rotten Tomatoes"
	sourceMetacritic     = "Metacritic"
)

// AggregateRating folds cross-source ratings into one score on a 0-10
// scale, rounded to one decimal. With no ratings at all it falls back to
// half the catalog vote average. A source it does not recognize contributes
// zero to the sum but still counts toward the divisor; product has not
// signed off on changing that, so the behavior stays.
func AggregateRating(ratings []omdb.Rating, catalogVoteAverage float64) float64 {
	if len(ratings) == 0 {
		return round1(catalogVoteAverage / 2)
	}

	var sum float64
	for _, rating := range ratings {
		switch rating.Source {
		case sourceIMDB:
			// "8.8/10"
			sum += parseNumerator(rating.Value)
		case sourceRottenTomatoes:
			// "87%"
			if v, err := strconv.ParseFloat(strings.TrimSuffix(rating.Value, "%"), 64); err == nil {
				sum += v / 10
			}
		case sourceMetacritic:
			// "74/100"
			sum += parseNumerator(rating.Value) / 10
		}
	}

	return round1(sum / float64(len(ratings)))
}

// parseNumerator reads the number before the "/" in values like "8.8/10".
// Unparseable values contribute zero.
func parseNumerator(value string) float64 {
	numerator, _, _ := strings.Cut(value, "/")
	v, err := strconv.ParseFloat(strings.TrimSpace(numerator), 64)
	if err != nil {
		return 0
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
