// Package config loads runtime configuration for the TitikTemu CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-d string   path of the local session database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080/api",
//	  "request_timeout": "30s",
//	  "session_db_path": "session.db"
//	}
//
// Primary API
//
//   - type Config                     - holds ServerBaseURL, RequestTimeout and SessionDBPath
//   - func LoadConfig() *Config       - builds Config by applying defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()   - sets sensible defaults
package config
