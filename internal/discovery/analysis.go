package discovery

import (
	"github.com/jkarvonen/cinescope/internal/omdb"
	"github.com/jkarvonen/cinescope/internal/tmdb"
)

// Analysis is an editorial summary attached to a combined movie view.
type Analysis struct {
	Verdict        string   `json:"verdict"`
	Pros           []string `json:"pros"`
	Cons           []string `json:"cons"`
	RecommendedAge string   `json:"recommendedAge"`
	MovieType      string   `json:"movieType"`
	DetectedGenres []string `json:"detectedGenres"`
}

// Analyze produces the editorial summary for a title. The content is a
// fixed template for now; the inputs are accepted so callers do not change
// when per-title analysis replaces it.
func Analyze(_ *tmdb.MovieDetails, _ *omdb.OMDBResponse) Analysis {
	return Analysis{
		Verdict: "This critically acclaimed masterpiece blends stunning visuals with a thought-provoking narrative, earning widespread praise from both critics and audiences.",
		Pros: []string{
			"Exceptional performances from the entire cast",
			"Stunning cinematography and visual effects",
			"Intriguing and original storyline",
			"Emotional depth and character development",
		},
		Cons: []string{
			"Complex narrative might be confusing for some viewers",
			"Pacing can feel slow in the middle act",
			"Some plot points left unresolved",
		},
		RecommendedAge: "13+",
		MovieType:      "Feature Film",
		DetectedGenres: []string{"Sci-Fi", "Drama", "Adventure"},
	}
}
