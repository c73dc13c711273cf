package tmdb

import (
	"context"
	"fmt"
	"net/url"
)

// Trending returns the current weekly trending movies for a region.
// Every returned record is tagged with the requested region code.
func (c *Client) Trending(ctx context.Context, regionCode string) ([]Movie, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("region", regionCode)

	endpoint := fmt.Sprintf("%s/trending/movie/week?%s", c.baseURL, params.Encode())

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
