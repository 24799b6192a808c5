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
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Config locations
const (
	AppDirName       = "psy"
	SettingsFileName = "settings.yaml"
	AndroidConfigDir = "/data/local/tmp"

	// EnvConfigDir overrides the config directory (used by tests and packaging)
	EnvConfigDir = "PSY_CONFIG_DIR"
)

// IsMobile reports whether the process runs on Android or iOS
func IsMobile() bool {
	if runtime.GOOS == OSAndroid || runtime.GOOS == OSIOS {
		return true
	}
	// Fyne Android apps run as libdist.so
	return os.Getenv("ANDROID_DATA") != "" ||
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

// GetConfigDir returns the directory holding the app's settings file
func GetConfigDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}

	if runtime.GOOS == OSAndroid {
		return filepath.Join(AndroidConfigDir, AppDirName), nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// DefaultSettingsPath returns the settings file path inside the config dir
func DefaultSettingsPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}
