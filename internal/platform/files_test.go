package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir", "nested")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetConfigDir_EnvOverride(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv(EnvConfigDir, tempDir)

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("Failed to get config directory: %v", err)
	}

	if dir != tempDir {
		t.Errorf("Expected config dir %s, got %s", tempDir, dir)
	}
}

func TestGetConfigDir_Default(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	// os.UserConfigDir needs HOME or XDG_CONFIG_HOME on unix
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("Failed to get config directory: %v", err)
	}

	if filepath.Base(dir) != AppDirName {
		t.Errorf("Expected directory to end with '%s', got: %s", AppDirName, dir)
	}
}

func TestDefaultSettingsPath(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv(EnvConfigDir, tempDir)

	path, err := DefaultSettingsPath()
	if err != nil {
		t.Fatalf("Failed to get settings path: %v", err)
	}

	expected := filepath.Join(tempDir, SettingsFileName)
	if path != expected {
		t.Errorf("Expected settings path %s, got %s", expected, path)
	}
}

func TestIsMobile_AndroidEnv(t *testing.T) {
	t.Setenv("ANDROID_DATA", "/data")

	if !IsMobile() {
		t.Error("Expected IsMobile() to be true when ANDROID_DATA is set")
	}
}
