package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPreferencesPath = "/home/user/.config/peek/config.json"

func TestLoadPreferences(t *testing.T) {
	testCases := []struct {
		name          string
		content       *string
		expectedColor *Color
		expectError   bool
	}{
		{name: "missing_file"},
		{name: "stored_color", content: stringPointer(`{"dir_color": "FF0000"}`), expectedColor: colorPointer("FF0000")},
		{name: "stored_color_normalized", content: stringPointer(`{"dir_color": "#0f0"}`), expectedColor: colorPointer("00FF00")},
		{name: "no_color_field", content: stringPointer(`{}`)},
		{name: "unrelated_fields", content: stringPointer(`{"theme": "dark"}`)},
		{name: "malformed_json", content: stringPointer(`{"dir_color": `), expectError: true},
		{name: "invalid_color", content: stringPointer(`{"dir_color": "purple"}`), expectError: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			fileSystem := afero.NewMemMapFs()
			if testCase.content != nil {
				require.NoError(t, afero.WriteFile(fileSystem, testPreferencesPath, []byte(*testCase.content), 0o600))
			}

			preferences, err := LoadPreferences(fileSystem, testPreferencesPath)
			if testCase.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, testCase.expectedColor, preferences.DirectoryColor)
		})
	}
}

func TestLoadPreferencesDirectoryPath(t *testing.T) {
	fileSystem := afero.NewMemMapFs()
	require.NoError(t, fileSystem.MkdirAll(testPreferencesPath, 0o755))

	preferences, err := LoadPreferences(fileSystem, testPreferencesPath)
	assert.Error(t, err)
	assert.Nil(t, preferences.DirectoryColor)
}

func TestSavePreferencesRoundTrip(t *testing.T) {
	fileSystem := afero.NewMemMapFs()
	color, err := NormalizeHexColor("#F00")
	require.NoError(t, err)

	require.NoError(t, SavePreferences(fileSystem, testPreferencesPath, Preferences{DirectoryColor: &color}))

	exists, err := afero.DirExists(fileSystem, filepath.Dir(testPreferencesPath))
	require.NoError(t, err)
	assert.True(t, exists)

	reloaded, err := LoadPreferences(fileSystem, testPreferencesPath)
	require.NoError(t, err)
	require.NotNil(t, reloaded.DirectoryColor)
	assert.Equal(t, Color("FF0000"), *reloaded.DirectoryColor)
}

func TestSavePreferencesOverwritesPreviousColor(t *testing.T) {
	fileSystem := afero.NewMemMapFs()
	first := Color("FF0000")
	second := Color("00FF00")

	require.NoError(t, SavePreferences(fileSystem, testPreferencesPath, Preferences{DirectoryColor: &first}))
	require.NoError(t, SavePreferences(fileSystem, testPreferencesPath, Preferences{DirectoryColor: &second}))

	reloaded, err := LoadPreferences(fileSystem, testPreferencesPath)
	require.NoError(t, err)
	require.NotNil(t, reloaded.DirectoryColor)
	assert.Equal(t, second, *reloaded.DirectoryColor)
}

func TestSavePreferencesReplacesMalformedFile(t *testing.T) {
	fileSystem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fileSystem, testPreferencesPath, []byte("not json"), 0o600))
	color := Color("123456")

	require.NoError(t, SavePreferences(fileSystem, testPreferencesPath, Preferences{DirectoryColor: &color}))

	reloaded, err := LoadPreferences(fileSystem, testPreferencesPath)
	require.NoError(t, err)
	require.NotNil(t, reloaded.DirectoryColor)
	assert.Equal(t, color, *reloaded.DirectoryColor)
}

func stringPointer(value string) *string {
	return &value
}

func colorPointer(value Color) *Color {
	return &value
}
