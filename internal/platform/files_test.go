package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestResolveDataDir(t *testing.T) {
	tempDir := t.TempDir()
	override := filepath.Join(tempDir, "override")
	storage := filepath.Join(tempDir, "storage")

	tests := []struct {
		name        string
		override    string
		storageRoot string
		want        string
	}{
		{"override wins", override, storage, override},
		{"storage root", "", storage, storage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDataDir(tt.override, tt.storageRoot)
			if err != nil {
				t.Fatalf("ResolveDataDir() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveDataDir() = %q, want %q", got, tt.want)
			}
			if info, err := os.Stat(got); err != nil || !info.IsDir() {
				t.Errorf("directory %s was not created", got)
			}
		})
	}
}

func TestResolveDataDir_UserConfigFallback(t *testing.T) {
	if IsMobile() {
		t.Skip("no user config dir on mobile")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	got, err := ResolveDataDir("", "")
	if err != nil {
		t.Fatalf("ResolveDataDir() error = %v", err)
	}
	if filepath.Base(got) != DataDirName {
		t.Errorf("expected directory to end with %q, got: %s", DataDirName, got)
	}
}
