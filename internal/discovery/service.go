// Package discovery aggregates catalog and ratings data into one
// normalized view. Every operation is total: provider failures are logged
// and answered from the built-in demo dataset, never surfaced to callers.
package discovery

import (
	"context"
	"log/slog"

	"github.com/jkarvonen/cinescope/internal/omdb"
	"github.com/jkarvonen/cinescope/internal/region"
	"github.com/jkarvonen/cinescope/internal/tmdb"
)

const (
	// placeholderIMDBID is the IMDb ID used for ratings lookups until
	// catalog-to-IMDb ID resolution lands.
	placeholderIMDBID = "tt1375666"

	// minQueryLength keeps one-character searches from hitting the
	// catalog provider.
	minQueryLength = 2
)

// CatalogClient is the catalog provider surface the service consumes.
type CatalogClient interface {
	Trending(ctx context.Context, regionCode string) ([]tmdb.Movie, error)
	SearchMovies(ctx context.Context, query, regionCode string) ([]tmdb.Movie, error)
	GetMovieDetails(ctx context.Context, movieID int, regionCode string) (*tmdb.MovieDetails, error)
}

// RatingsClient is the ratings provider surface the service consumes.
type RatingsClient interface {
	Fetch(ctx context.Context, imdbID string) (*omdb.OMDBResponse, error)
}

// Service is the aggregation layer over the catalog and ratings providers.
type Service struct {
	catalog CatalogClient
	ratings RatingsClient
	offline bool
}

// NewService creates a Service. A nil catalog or ratings client puts the
// corresponding operations in demo mode.
func NewService(catalog CatalogClient, ratings RatingsClient, opts ...ServiceOption) *Service {
	svc := &Service{
		catalog: catalog,
		ratings: ratings,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc
}

// ServiceOption is a functional option for configuring the Service.
type ServiceOption func(*Service)

// WithOffline forces demo mode for all operations regardless of
// configured providers.
func WithOffline(offline bool) ServiceOption {
	return func(svc *Service) {
		svc.offline = offline
	}
}

// Trending returns the trending titles for a region. An empty region code
// resolves to the default region.
func (s *Service) Trending(ctx context.Context, regionCode string) []tmdb.Movie {
	if regionCode == "" {
		regionCode = region.Default
	}

	if s.offline || s.catalog == nil {
		return demoTrending(regionCode)
	}

	movies, err := s.catalog.Trending(ctx, regionCode)
	if err != nil {
		slog.Warn("Trending lookup failed, serving demo data", "region", regionCode, "error", err)
		return demoTrending(regionCode)
	}
	return movies
}

// Search returns titles matching the query within a region. Queries shorter
// than two characters return an empty result without hitting any provider.
func (s *Service) Search(ctx context.Context, query, regionCode string) []tmdb.Movie {
	if len(query) < minQueryLength {
		return []tmdb.Movie{}
	}
	if regionCode == "" {
		regionCode = region.Default
	}

	if s.offline || s.catalog == nil {
		return demoSearch(query, regionCode)
	}

	movies, err := s.catalog.SearchMovies(ctx, query, regionCode)
	if err != nil {
		slog.Warn("Search failed, serving demo data", "query", query, "region", regionCode, "error", err)
		return demoSearch(query, regionCode)
	}
	return movies
}

// Details returns the full record for one title in a region.
func (s *Service) Details(ctx context.Context, movieID int, regionCode string) *tmdb.MovieDetails {
	if regionCode == "" {
		regionCode = region.Default
	}

	if s.offline || s.catalog == nil {
		return demoDetails(movieID, regionCode)
	}

	details, err := s.catalog.GetMovieDetails(ctx, movieID, regionCode)
	if err != nil {
		slog.Warn("Details lookup failed, serving demo data", "movie_id", movieID, "region", regionCode, "error", err)
		return demoDetails(movieID, regionCode)
	}
	return details
}

// Ratings returns the cross-source rating record for an IMDb ID.
func (s *Service) Ratings(ctx context.Context, imdbID string) *omdb.OMDBResponse {
	if s.offline || s.ratings == nil {
		return demoRatings()
	}

	record, err := s.ratings.Fetch(ctx, imdbID)
	if err != nil {
		slog.Warn("Ratings lookup failed, serving demo data", "imdb_id", imdbID, "error", err)
		return demoRatings()
	}
	return record
}

// Combined is the fully aggregated view of one title: catalog details,
// ratings, canned analysis, the aggregate score, and region-local fields.
type Combined struct {
	TMDB            *tmdb.MovieDetails `json:"tmdb"`
	OMDB            *omdb.OMDBResponse `json:"omdb"`
	Analysis        Analysis           `json:"analysis"`
	AggregateRating float64            `json:"aggregateRating"`
	Region          string             `json:"region"`
	RegionalData    RegionalData       `json:"regionalData"`
}

// RegionalData carries the release fields local to the requested region.
type RegionalData struct {
	LocalTitle         string `json:"localTitle,omitempty"`
	LocalReleaseDate   string `json:"localReleaseDate,omitempty"`
	LocalCertification string `json:"localCertification,omitempty"`
	LocalBoxOffice     string `json:"localBoxOffice,omitempty"`
}

// Combined assembles the aggregated view for one title in one region.
func (s *Service) Combined(ctx context.Context, movieID int, regionCode string) *Combined {
	if regionCode == "" {
		regionCode = region.Default
	}

	details := s.Details(ctx, movieID, regionCode)
	ratings := s.Ratings(ctx, placeholderIMDBID)

	return &Combined{
		TMDB:            details,
		OMDB:            ratings,
		Analysis:        Analyze(details, ratings),
		AggregateRating: AggregateRating(ratings.Ratings, details.VoteAverage),
		Region:          regionCode,
		RegionalData:    regionalData(details, ratings, regionCode),
	}
}

// regionalData pulls the requested region's release entry out of the
// detail record. The box office figure comes from the ratings provider
// since the catalog only reports worldwide revenue.
func regionalData(details *tmdb.MovieDetails, ratings *omdb.OMDBResponse, regionCode string) RegionalData {
	data := RegionalData{
		LocalBoxOffice: ratings.BoxOffice,
	}
	for _, release := range details.RegionalReleases {
		if release.RegionCode == regionCode {
			data.LocalTitle = release.LocalTitle
			data.LocalReleaseDate = release.ReleaseDate
			data.LocalCertification = release.Certification
			break
		}
	}
	return data
}
