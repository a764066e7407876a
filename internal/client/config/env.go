package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by parseEnv.
const (
	envServerBaseURL  = "TITIKTEMU_SERVER_URL"
	envRequestTimeout = "TITIKTEMU_REQUEST_TIMEOUT"
	envSessionDBPath  = "TITIKTEMU_SESSION_DB"
)

// parseEnv overlays Config with values from the process environment. An
// optional .env file in the working directory is loaded first; variables
// already present in the environment win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envServerBaseURL); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envSessionDBPath); v != "" {
		cfg.SessionDBPath = v
	}
}
