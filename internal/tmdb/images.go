package tmdb

import "strings"

// Image size tokens per slot, matching what the UI renders.
const (
	posterSize   = "w500"
	backdropSize = "original"
	profileSize  = "w185"
	logoSize     = "w200"
)

// PlaceholderImage is served when a record carries no image path.
const PlaceholderImage = "/images/poster-placeholder.png"

// PosterURL resolves a poster path fragment to a displayable URL.
func (c *Client) PosterURL(path string) string {
	return c.imageURL(path, posterSize)
}

// BackdropURL resolves a backdrop path fragment at original resolution.
func (c *Client) BackdropURL(path string) string {
	return c.imageURL(path, backdropSize)
}

// ProfileURL resolves a cast/crew profile image path fragment.
func (c *Client) ProfileURL(path string) string {
	return c.imageURL(path, profileSize)
}

// LogoURL resolves a production-company logo path fragment.
func (c *Client) LogoURL(path string) string {
	return c.imageURL(path, logoSize)
}

func (c *Client) imageURL(path, size string) string {
	if path == "" {
		return PlaceholderImage
	}
	// Demo records carry absolute URLs already; pass them through.
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.imageBaseURL + "/" + size + path
}
