package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/jkarvonen/cinescope/internal/region"
)

// TrendingCmd represents the trending command
type TrendingCmd struct {
	Regions []string `short:"r" help:"Region codes to query (repeat or comma-separate)" default:"US"`
}

// SearchCmd represents the search command
type SearchCmd struct {
	Query   string   `arg:"" help:"Title to search for"`
	Regions []string `short:"r" help:"Region codes to query (repeat or comma-separate)" default:"US"`
}

// MovieCmd represents the movie command
type MovieCmd struct {
	ID     int    `arg:"" help:"Movie ID"`
	Region string `short:"r" help:"Region code" default:"US"`
}

// RegionsCmd represents the regions command
type RegionsCmd struct{}

func printJSON(payload any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func (t *TrendingCmd) Run() error {
	svc := newService()
	if len(t.Regions) == 1 {
		return printJSON(svc.Trending(context.Background(), t.Regions[0]))
	}
	return printJSON(svc.TrendingByRegion(context.Background(), t.Regions))
}

func (s *SearchCmd) Run() error {
	svc := newService()
	if len(s.Regions) == 1 {
		return printJSON(svc.Search(context.Background(), s.Query, s.Regions[0]))
	}
	return printJSON(svc.SearchByRegion(context.Background(), s.Query, s.Regions))
}

func (m *MovieCmd) Run() error {
	svc := newService()
	return printJSON(svc.Combined(context.Background(), m.ID, m.Region))
}

func (r *RegionsCmd) Run() error {
	return printJSON(region.List())
}
