// Package testutil provides common test utilities for the cinescope project.
package testutil

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/jkarvonen/cinescope/internal/config"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	TMDBAPIKey string
	OMDBAPIKey string
	Offline    bool
	ListenAddr string
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		TMDBAPIKey: config.TMDBAPIKey,
		OMDBAPIKey: config.OMDBAPIKey,
		Offline:    config.Offline,
		ListenAddr: config.ListenAddr,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.TMDBAPIKey = state.TMDBAPIKey
	config.OMDBAPIKey = state.OMDBAPIKey
	config.Offline = state.Offline
	config.ListenAddr = state.ListenAddr
}

// ResetConfig saves the current config state and schedules restoration
// when the test completes. It also resets viper.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetTestConfig sets up a test configuration with common defaults.
// It saves the current state and restores it when the test completes.
func SetTestConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	config.TMDBAPIKey = "test-tmdb-key"
	config.OMDBAPIKey = "test-omdb-key"
	config.Offline = true
	config.ListenAddr = ":0"

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}
