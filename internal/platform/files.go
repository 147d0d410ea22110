package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSAndroid = "android"
	OSIOS     = "ios"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// DataDirName is the directory created under the user config dir
const DataDirName = "spotmobile"

// IsMobile reports whether the process runs on Android or iOS
func IsMobile() bool {
	return runtime.GOOS == OSIOS || IsAndroid()
}

// IsAndroid reports whether the process runs on Android.
// Fyne Android apps run as libdist.so.
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// ResolveDataDir picks the application data directory: the explicit override,
// then the app sandbox root, then the user config dir. The result exists on
// return.
func ResolveDataDir(override, storageRoot string) (string, error) {
	dir := override
	if dir == "" {
		dir = storageRoot
	}
	if dir == "" {
		if IsMobile() {
			return "", fmt.Errorf("no storage root on mobile")
		}
		configDir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user config directory: %w", err)
		}
		dir = filepath.Join(configDir, DataDirName)
	}

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return dir, nil
}
