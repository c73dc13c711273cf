package discovery

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/jkarvonen/cinescope/internal/region"
	"github.com/jkarvonen/cinescope/internal/tmdb"
)

// maxConcurrentRegions bounds provider fan-out for multi-region queries.
const maxConcurrentRegions = 8

// fanOut runs fetch once per region code with bounded concurrency and
// collects the results keyed by code. fetch is total, so every requested
// code gets an entry.
func fanOut[T any](ctx context.Context, regionCodes []string, fetch func(ctx context.Context, regionCode string) T) map[string]T {
	if len(regionCodes) == 0 {
		regionCodes = []string{region.Default}
	}

	sem := semaphore.NewWeighted(maxConcurrentRegions)
	results := make(map[string]T, len(regionCodes))

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, code := range regionCodes {
		wg.Add(1)
		go func(code string) {
			defer wg.Done()

			// Acquire fails only when ctx is done; fetch still runs
			// and answers from the demo dataset in that case.
			acquired := sem.Acquire(ctx, 1) == nil
			if acquired {
				defer sem.Release(1)
			}

			result := fetch(ctx, code)

			mu.Lock()
			results[code] = result
			mu.Unlock()
		}(code)
	}

	wg.Wait()
	return results
}

// TrendingByRegion fetches trending titles for several regions at once.
func (s *Service) TrendingByRegion(ctx context.Context, regionCodes []string) map[string][]tmdb.Movie {
	return fanOut(ctx, regionCodes, func(ctx context.Context, code string) []tmdb.Movie {
		return s.Trending(ctx, code)
	})
}

// SearchByRegion runs one search across several regions at once.
func (s *Service) SearchByRegion(ctx context.Context, query string, regionCodes []string) map[string][]tmdb.Movie {
	return fanOut(ctx, regionCodes, func(ctx context.Context, code string) []tmdb.Movie {
		return s.Search(ctx, query, code)
	})
}

// DetailsByRegion fetches one title's details for several regions at once.
func (s *Service) DetailsByRegion(ctx context.Context, movieID int, regionCodes []string) map[string]*tmdb.MovieDetails {
	return fanOut(ctx, regionCodes, func(ctx context.Context, code string) *tmdb.MovieDetails {
		return s.Details(ctx, movieID, code)
	})
}
