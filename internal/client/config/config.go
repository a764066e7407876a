package config

import "time"

// Config holds runtime settings for the TitikTemu CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API, including the
//     path prefix (e.g. http://127.0.0.1:8080/api).
//   - RequestTimeout: per-request HTTP timeout.
//   - SessionDBPath: path of the local SQLite session database.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	SessionDBPath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 30 * time.Second
	c.SessionDBPath = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including an optional .env file), a JSON file
// (if present) and command-line flags. Later sources take precedence
// over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
