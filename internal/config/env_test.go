package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEnv_FromFile(t *testing.T) {
	for _, key := range []string{
		"SPOTIFY_CLIENT_ID", "SPOTIFY_CLIENT_SECRET", "SPOTIFY_ACCESS_TOKEN",
		"SPOTIFY_REFRESH_TOKEN", "SPOTIFY_API_URL", "SPOTIFY_REQUEST_TIMEOUT",
		"LOG_LEVEL", "SPOTMOBILE_DEBUG",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "SPOTIFY_ACCESS_TOKEN=token-123\n" +
		"SPOTIFY_API_URL=http://localhost:9000/v1\n" +
		"SPOTIFY_REQUEST_TIMEOUT=20s\n" +
		"LOG_LEVEL=debug\n" +
		"SPOTMOBILE_DEBUG=true\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	env, err := LoadEnv(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if env.AccessToken != "token-123" {
		t.Errorf("Expected access token from file, got '%s'", env.AccessToken)
	}
	if env.APIURL != "http://localhost:9000/v1/" {
		t.Errorf("Expected normalized API URL, got '%s'", env.APIURL)
	}
	if env.RequestTimeout != 20*time.Second {
		t.Errorf("Expected 20s timeout, got %v", env.RequestTimeout)
	}
	if env.LogLevel != "debug" {
		t.Errorf("Expected debug log level, got '%s'", env.LogLevel)
	}
	if !env.Debug {
		t.Error("Expected debug flag")
	}
	if err := env.Validate(); err != nil {
		t.Errorf("Expected valid env, got %v", err)
	}
}

func TestLoadEnv_MissingFileIgnored(t *testing.T) {
	t.Setenv("SPOTIFY_API_URL", "")

	env, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Expected missing file to be ignored, got %v", err)
	}
	if env.APIURL != DefaultAPIURL {
		t.Errorf("Expected default API URL, got '%s'", env.APIURL)
	}
}

func TestEnv_Validate(t *testing.T) {
	tests := []struct {
		name    string
		env     Env
		wantErr bool
	}{
		{"no tokens", Env{}, true},
		{"access token", Env{AccessToken: "a"}, false},
		{"refresh without client", Env{RefreshToken: "r"}, true},
		{"refresh with client", Env{RefreshToken: "r", ClientID: "id", ClientSecret: "secret"}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.env.Validate()
			if (err != nil) != test.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, test.wantErr)
			}
		})
	}
}
