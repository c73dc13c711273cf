package tmdb

import (
	"context"
	"fmt"
	"net/url"
)

// SearchMovies performs a movie search scoped to a region. Results are left
// in TMDB's own relevance order and tagged with the requested region code.
func (c *Client) SearchMovies(ctx context.Context, query, regionCode string) ([]Movie, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", query)
	params.Set("region", regionCode)

	endpoint := fmt.Sprintf("%s/search/movie?%s", c.baseURL, params.Encode())

	var response struct {
		Results []Movie `json:"results"`
	}
	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	movies := response.Results
	for i := range movies {
		movies[i].Region = regionCode
	}
	return movies, nil
}
