// Package config persists user preferences and loads ignore files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/tikrack/peek/internal/utils"
)

const (
	// directoryColorKey is the preference file key holding the directory color.
	directoryColorKey = "dir_color"
	configurationType = "json"

	configurationDirectoryPermissions = 0o755

	errorConfigDirectoryFormat = "resolve configuration directory: %w"
	errorStatFormat            = "stat configuration %s: %w"
	errorIsDirectoryFormat     = "configuration path %s is a directory"
	errorReadFormat            = "read configuration from %s: %w"
	errorDecodeFormat          = "decode configuration from %s: %w"
	errorColorFormat           = "configuration %s: %w"
	errorCreateDirectoryFormat = "create configuration directory %s: %w"
	errorWriteFormat           = "write configuration to %s: %w"
)

// Preferences holds the settings persisted between invocations.
type Preferences struct {
	// DirectoryColor overrides the default directory color when set.
	DirectoryColor *Color
}

type preferenceFile struct {
	DirectoryColor string `mapstructure:"dir_color"`
}

// DefaultPreferencesPath returns the per-user location of the preference file.
func DefaultPreferencesPath() (string, error) {
	configurationDirectory, directoryError := os.UserConfigDir()
	if directoryError != nil {
		return "", fmt.Errorf(errorConfigDirectoryFormat, directoryError)
	}
	return filepath.Join(configurationDirectory, utils.ApplicationName, utils.ConfigFileName), nil
}

// LoadPreferences reads the preference file at path. A missing file yields the
// defaults with no error. Any other problem also yields the defaults together
// with an error describing it, so callers may report it and carry on.
func LoadPreferences(fileSystem afero.Fs, path string) (Preferences, error) {
	info, statErr := fileSystem.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return Preferences{}, nil
		}
		return Preferences{}, fmt.Errorf(errorStatFormat, path, statErr)
	}
	if info.IsDir() {
		return Preferences{}, fmt.Errorf(errorIsDirectoryFormat, path)
	}

	reader := newReader(fileSystem, path)
	if readErr := reader.ReadInConfig(); readErr != nil {
		return Preferences{}, fmt.Errorf(errorReadFormat, path, readErr)
	}
	var decoded preferenceFile
	if decodeErr := reader.Unmarshal(&decoded); decodeErr != nil {
		return Preferences{}, fmt.Errorf(errorDecodeFormat, path, decodeErr)
	}
	if decoded.DirectoryColor == "" {
		return Preferences{}, nil
	}
	color, colorErr := NormalizeHexColor(decoded.DirectoryColor)
	if colorErr != nil {
		return Preferences{}, fmt.Errorf(errorColorFormat, path, colorErr)
	}
	return Preferences{DirectoryColor: &color}, nil
}

// SavePreferences writes preferences to path, creating its directory when
// needed. Keys already present in the file are kept.
func SavePreferences(fileSystem afero.Fs, path string, preferences Preferences) error {
	directory := filepath.Dir(path)
	if mkdirErr := fileSystem.MkdirAll(directory, configurationDirectoryPermissions); mkdirErr != nil {
		return fmt.Errorf(errorCreateDirectoryFormat, directory, mkdirErr)
	}

	writer := newReader(fileSystem, path)
	// A malformed existing file is replaced rather than merged.
	_ = writer.ReadInConfig()
	if preferences.DirectoryColor != nil {
		writer.Set(directoryColorKey, string(*preferences.DirectoryColor))
	}
	if writeErr := writer.WriteConfigAs(path); writeErr != nil {
		return fmt.Errorf(errorWriteFormat, path, writeErr)
	}
	return nil
}

func newReader(fileSystem afero.Fs, path string) *viper.Viper {
	reader := viper.New()
	reader.SetFs(fileSystem)
	reader.SetConfigFile(path)
	reader.SetConfigType(configurationType)
	return reader
}
