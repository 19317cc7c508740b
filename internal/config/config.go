package config // package config loads client configuration from environment variables

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the storefront client.
// Every field corresponds to an environment variable.  Unlike a server,
// the client can start with defaults for everything except the backend
// base URL, which has a development default but should be set in any
// real deployment.
type Config struct {
	BaseURL        string        // API_BASE_URL – backend origin, e.g. http://localhost:5454
	RequestTimeout time.Duration // API_TIMEOUT_SECONDS – per-request timeout for the HTTP client
	SessionBackend string        // SESSION_BACKEND – "file" or "redis"
	SessionFile    string        // SESSION_FILE – path of the JSON session file for the file backend
	RedisAddr      string        // REDIS_ADDR or REDIS_HOST:REDIS_PORT for the redis backend
	RedisPassword  string        // REDIS_PASSWORD – optional redis password
	RedisDB        int           // REDIS_DB – redis database number
	LogLevel       string        // LOG_LEVEL – logrus level name (debug, info, warn, error)
}

// Load reads configuration from the environment.  A .env file in the
// working directory is merged in first when present; real environment
// variables win over file entries, which is godotenv's default.
func Load() Config {
	_ = godotenv.Load()

	addr := os.Getenv("REDIS_ADDR")
	if host, port := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"); host != "" && port != "" {
		addr = host + ":" + port
	}

	return Config{
		BaseURL:        getenv("API_BASE_URL", "http://localhost:5454"),
		RequestTimeout: time.Duration(getenvInt("API_TIMEOUT_SECONDS", 15)) * time.Second,
		SessionBackend: getenv("SESSION_BACKEND", "file"),
		SessionFile:    getenv("SESSION_FILE", ".storefront-session.json"),
		RedisAddr:      addr,
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getenvInt("REDIS_DB", 0),
		LogLevel:       getenv("LOG_LEVEL", "info"),
	}
}

// getenv returns the value of key or def when the variable is unset or
// empty.
func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// getenvInt is like getenv but converts the value to an integer.  A
// value that does not parse falls back to the default rather than
// aborting; a misconfigured client should still come up.
func getenvInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
