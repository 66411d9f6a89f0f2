package render

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testRoot = "/project"

var errPermissionDenied = errors.New("permission denied")

// newMemoryTree creates testRoot holding the given entries. Paths ending in
// "/" are directories, all others are files.
func newMemoryTree(t *testing.T, entries ...string) afero.Fs {
	t.Helper()
	fileSystem := afero.NewMemMapFs()
	require.NoError(t, fileSystem.MkdirAll(testRoot, 0o755))
	for _, entry := range entries {
		entryPath := filepath.Join(testRoot, filepath.FromSlash(entry))
		if strings.HasSuffix(entry, "/") {
			require.NoError(t, fileSystem.MkdirAll(entryPath, 0o755))
			continue
		}
		require.NoError(t, fileSystem.MkdirAll(filepath.Dir(entryPath), 0o755))
		require.NoError(t, afero.WriteFile(fileSystem, entryPath, []byte(entry), 0o644))
	}
	return fileSystem
}

func plainPalette() Palette {
	return NewPalette(profileRenderer(termenv.Ascii), nil)
}

func profileRenderer(profile termenv.Profile) *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(profile)
	return renderer
}

func lines(text ...string) string {
	return strings.Join(text, "\n") + "\n"
}

// failingFs refuses to open the listed paths.
type failingFs struct {
	afero.Fs
	failingPaths map[string]struct{}
}

func (fileSystem failingFs) Open(name string) (afero.File, error) {
	if _, fails := fileSystem.failingPaths[name]; fails {
		return nil, &os.PathError{Op: "open", Path: name, Err: errPermissionDenied}
	}
	return fileSystem.Fs.Open(name)
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func uintPointer(value uint) *uint {
	return &value
}

func filterIgnore(t *testing.T, patterns ...string) *ignore.GitIgnore {
	t.Helper()
	return ignore.CompileIgnoreLines(patterns...)
}
