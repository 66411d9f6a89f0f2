package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/afero"
)

// GitIgnoreFileName is the name of the Git ignore file.
const GitIgnoreFileName = ".gitignore"

// LoadIgnoreFilePatterns reads the ignore file at ignoreFilePath and returns its
// patterns with blank lines and comments removed. A missing file yields no
// patterns and no error.
func LoadIgnoreFilePatterns(fileSystem afero.Fs, ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := fileSystem.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer fileHandle.Close()

	var ignorePatterns []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ignorePatterns = append(ignorePatterns, line)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return ignorePatterns, nil
}

// LoadGitIgnore compiles the .gitignore located directly in rootDirectoryPath.
// It returns nil when the directory has no .gitignore or the file is empty.
func LoadGitIgnore(fileSystem afero.Fs, rootDirectoryPath string) (*ignore.GitIgnore, error) {
	gitIgnoreFilePath := filepath.Join(rootDirectoryPath, GitIgnoreFileName)
	patterns, loadError := LoadIgnoreFilePatterns(fileSystem, gitIgnoreFilePath)
	if loadError != nil {
		return nil, fmt.Errorf("loading %s from %s: %w", GitIgnoreFileName, rootDirectoryPath, loadError)
	}
	if len(patterns) == 0 {
		return nil, nil
	}
	return ignore.CompileIgnoreLines(patterns...), nil
}
