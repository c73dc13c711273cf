package cmd

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/jkarvonen/cinescope/internal/config"
	"github.com/jkarvonen/cinescope/internal/discovery"
	"github.com/jkarvonen/cinescope/internal/omdb"
	"github.com/jkarvonen/cinescope/internal/tmdb"
)

// CLI represents the complete command structure for the cinescope application
type CLI struct {
	// Global flags
	Offline bool `help:"Serve the built-in demo dataset without contacting providers"`

	Serve    ServeCmd    `cmd:"" help:"Run the HTTP API server"`
	Trending TrendingCmd `cmd:"" help:"Show trending movies for one or more regions"`
	Search   SearchCmd   `cmd:"" help:"Search movies by title"`
	Movie    MovieCmd    `cmd:"" help:"Show the combined view for a single movie"`
	Regions  RegionsCmd  `cmd:"" help:"List supported regions"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("cinescope"),
		kong.Description("Movie discovery across catalog and ratings providers, with regional views."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

	viper.AutomaticEnv()
	for key, env := range map[string]string{
		"TMDBAPIKey": "TMDB_API_KEY",
		"OMDBAPIKey": "OMDB_API_KEY",
		"ListenAddr": "LISTEN_ADDR",
	} {
		if err := viper.BindEnv(key, env); err != nil {
			slog.Error("Failed to bind environment variable", "env", env, "error", err)
		}
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	// Initialize global config
	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	if cli.Offline {
		config.SetOffline(true)
	}
}

// newService wires the provider clients into the aggregation service using
// the resolved global configuration.
func newService() *discovery.Service {
	catalog := tmdb.NewClient(config.TMDBAPIKey)
	ratings := omdb.NewClient(config.OMDBAPIKey)
	return discovery.NewService(catalog, ratings, discovery.WithOffline(config.Offline))
}

func initLogging() {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
