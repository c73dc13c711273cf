package config

import (
	"github.com/spf13/viper"
)

// Development fallback API keys. They carry public demo quotas only and
// should be replaced through TMDB_API_KEY / OMDB_API_KEY in any real
// deployment.
const (
	defaultTMDBAPIKey = "1b4126b986b05b3b5a5ea09a86276211"
	defaultOMDBAPIKey = "6abe85c6"
)

// Global configuration variables
var (
	// TMDBAPIKey is the API key for TheMovieDB
	TMDBAPIKey string
	// OMDBAPIKey is the API key for OMDB (Open Movie Database)
	OMDBAPIKey string
	// Offline forces demo mode regardless of provider availability
	Offline bool
	// ListenAddr is the HTTP server bind address
	ListenAddr string
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("TMDBAPIKey", defaultTMDBAPIKey)
	viper.SetDefault("OMDBAPIKey", defaultOMDBAPIKey)
	viper.SetDefault("Offline", false)
	viper.SetDefault("ListenAddr", ":8080")

	// Get values from viper
	TMDBAPIKey = viper.GetString("TMDBAPIKey")
	OMDBAPIKey = viper.GetString("OMDBAPIKey")
	Offline = viper.GetBool("Offline")
	ListenAddr = viper.GetString("ListenAddr")
}

// SetOffline sets the Offline flag
func SetOffline(offline bool) {
	Offline = offline
}
