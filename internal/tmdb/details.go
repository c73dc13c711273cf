package tmdb

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jkarvonen/cinescope/internal/region"
)

// appendedResources are fetched alongside the movie record in a single
// request via TMDB's response-composition feature, instead of one request
// per sub-resource.
const appendedResources = "videos,credits,images,release_dates"

// detailResponse is the raw detail payload. The release_dates sub-resource
// keeps TMDB's nested shape here and is flattened into RegionalReleases
// before the details are returned.
type detailResponse struct {
	MovieDetails

	ReleaseDates struct {
		Results []struct {
			ISO3166_1    string `json:"iso_3166_1"`
			ReleaseDates []struct {
				Certification string `json:"certification"`
				ReleaseDate   string `json:"release_date"`
			} `json:"release_dates"`
		} `json:"results"`
	} `json:"release_dates"`
}

// GetMovieDetails fetches a movie plus its videos, credits, images and
// per-region release dates in one request.
func (c *Client) GetMovieDetails(ctx context.Context, movieID int, regionCode string) (*MovieDetails, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("append_to_response", appendedResources)
	params.Set("region", regionCode)

	endpoint := fmt.Sprintf("%s/movie/%d?%s", c.baseURL, movieID, params.Encode())

	var response detailResponse
	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	details := response.MovieDetails
	details.Region = regionCode
	details.RegionalReleases = flattenReleaseDates(response)
	return &details, nil
}

// flattenReleaseDates maps the nested release_dates payload into one
// RegionalRelease per region. Only the first nested entry counts as the
// primary release for its region; later entries (re-releases, festival
// screenings) are discarded. Display names come from the region registry,
// with the raw code standing in for both code and name when unregistered.
func flattenReleaseDates(response detailResponse) []RegionalRelease {
	raw := response.ReleaseDates.Results
	if len(raw) == 0 {
		return nil
	}

	releases := make([]RegionalRelease, 0, len(raw))
	for _, entry := range raw {
		name := entry.ISO3166_1
		if r, ok := region.Lookup(entry.ISO3166_1); ok {
			name = r.Name
		}

		release := RegionalRelease{
			RegionCode: entry.ISO3166_1,
			RegionName: name,
		}
		if len(entry.ReleaseDates) > 0 {
			release.ReleaseDate = entry.ReleaseDates[0].ReleaseDate
			release.Certification = entry.ReleaseDates[0].Certification
		}
		releases = append(releases, release)
	}
	return releases
}
