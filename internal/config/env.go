package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAPIURL is the Spotify Web API base; paths are resolved against it
const DefaultAPIURL = "https://api.spotify.com/v1/"

// Env holds process-level configuration read from the environment
type Env struct {
	// Spotify
	ClientID       string
	ClientSecret   string
	AccessToken    string
	RefreshToken   string
	APIURL         string
	RequestTimeout time.Duration

	// Logging
	LogLevel string
	LogPath  string

	// App Data Directory
	AppDataDir string

	Debug bool
}

// ErrNoToken is returned when neither an access nor a refresh token is configured
var ErrNoToken = errors.New("SPOTIFY_ACCESS_TOKEN or SPOTIFY_REFRESH_TOKEN is required")

// LoadEnv loads configuration from the environment, reading the given .env
// files first. Missing .env files are ignored.
func LoadEnv(files ...string) (*Env, error) {
	if len(files) == 0 {
		// Ignore the error if .env does not exist
		_ = godotenv.Load()
	} else {
		for _, f := range files {
			if f == "" {
				continue
			}
			if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
	}

	env := &Env{
		ClientID:       getEnv("SPOTIFY_CLIENT_ID", ""),
		ClientSecret:   getEnv("SPOTIFY_CLIENT_SECRET", ""),
		AccessToken:    getEnv("SPOTIFY_ACCESS_TOKEN", ""),
		RefreshToken:   getEnv("SPOTIFY_REFRESH_TOKEN", ""),
		APIURL:         normalizeAPIURL(getEnv("SPOTIFY_API_URL", DefaultAPIURL)),
		RequestTimeout: getEnvDuration("SPOTIFY_REQUEST_TIMEOUT", 0),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogPath:        getEnv("LOG_PATH", ""),
		AppDataDir:     getEnv("APP_DATA_DIR", ""),
		Debug:          getEnvBool("SPOTMOBILE_DEBUG", false),
	}

	return env, nil
}

// Validate checks that the service can be authenticated
func (e *Env) Validate() error {
	if e.AccessToken == "" && e.RefreshToken == "" {
		return ErrNoToken
	}
	if e.RefreshToken != "" && (e.ClientID == "" || e.ClientSecret == "") {
		return errors.New("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET are required to refresh tokens")
	}
	return nil
}

// normalizeAPIURL makes sure relative paths resolve under the base
func normalizeAPIURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return DefaultAPIURL
	}
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return u
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
