package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	APIs     APIConfig      `json:"apis"`
	Logging  LoggingConfig  `json:"logging"`
}

// ServerConfig for HTTP server settings
type ServerConfig struct {
	Port         string `json:"port"`
	ReadTimeout  int    `json:"read_timeout_seconds"`
	WriteTimeout int    `json:"write_timeout_seconds"`
}

// DatabaseConfig for the local favorites store. An empty path disables
// persistence entirely; favorites then behave as an empty, read-only list.
type DatabaseConfig struct {
	Path string `json:"path"`
}

// APIConfig holds all external API configurations
type APIConfig struct {
	Spotify     SpotifyConfig     `json:"spotify"`
	Bandsintown BandsintownConfig `json:"bandsintown"`
}

// SpotifyConfig for the Spotify Web API. Absence of credentials is a normal
// configuration state: artist search then uses generated placeholder data.
type SpotifyConfig struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// Configured reports whether both credential halves are present.
func (c SpotifyConfig) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// BandsintownConfig for the Bandsintown events API
type BandsintownConfig struct {
	AppID string `json:"app_id"`
}

// LoggingConfig for zerolog output
type LoggingConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
}

// Load reads configuration from file and environment variables.
// Environment variables override file values.
func Load(configPath string) (*Config, error) {
	config := &Config{}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	applyDefaults(config)
	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func applyDefaults(config *Config) {
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}
	if config.Server.ReadTimeout == 0 {
		config.Server.ReadTimeout = 30
	}
	if config.Server.WriteTimeout == 0 {
		config.Server.WriteTimeout = 30
	}
	if config.APIs.Bandsintown.AppID == "" {
		config.APIs.Bandsintown.AppID = "music-events-finder"
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.Format == "" {
		config.Logging.Format = "json"
	}
}

func applyEnvOverrides(config *Config) {
	if v := os.Getenv("STAGEDIVE_SERVER_PORT"); v != "" {
		config.Server.Port = v
	}
	if v := os.Getenv("STAGEDIVE_DATABASE_PATH"); v != "" {
		config.Database.Path = v
	}
	if v := os.Getenv("SPOTIFY_CLIENT_ID"); v != "" {
		config.APIs.Spotify.ClientID = v
	}
	if v := os.Getenv("SPOTIFY_CLIENT_SECRET"); v != "" {
		config.APIs.Spotify.ClientSecret = v
	}
	if v := os.Getenv("BANDSINTOWN_APP_ID"); v != "" {
		config.APIs.Bandsintown.AppID = v
	}
	if v := os.Getenv("STAGEDIVE_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("STAGEDIVE_LOG_FORMAT"); v != "" {
		config.Logging.Format = v
	}
}

// Validate checks for configurations that can never work. Missing Spotify
// credentials are deliberately not an error; half-configured ones are.
func (c *Config) Validate() error {
	if (c.APIs.Spotify.ClientID == "") != (c.APIs.Spotify.ClientSecret == "") {
		return fmt.Errorf("spotify credentials must be set together or not at all")
	}
	return nil
}
