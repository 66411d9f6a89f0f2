package render

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tikrack/peek/internal/config"
)

// Category is the display class of an entry name.
type Category int

const (
	// CategoryPlain covers every entry without special styling.
	CategoryPlain Category = iota
	// CategoryDirectory covers directories.
	CategoryDirectory
	// CategorySource covers files whose extension names a programming language.
	CategorySource
)

var (
	defaultDirectoryColor = lipgloss.Color("4")
	sourceAccentColor     = lipgloss.Color("2")
)

var sourceExtensions = map[string]struct{}{
	".c":     {},
	".cc":    {},
	".cpp":   {},
	".cs":    {},
	".go":    {},
	".h":     {},
	".hpp":   {},
	".java":  {},
	".js":    {},
	".jsx":   {},
	".kt":    {},
	".lua":   {},
	".php":   {},
	".py":    {},
	".rb":    {},
	".rs":    {},
	".sh":    {},
	".swift": {},
	".ts":    {},
	".tsx":   {},
	".zig":   {},
}

// Classify resolves the display category of an entry.
func Classify(name string, isDirectory bool) Category {
	if isDirectory {
		return CategoryDirectory
	}
	if _, isSource := sourceExtensions[strings.ToLower(filepath.Ext(name))]; isSource {
		return CategorySource
	}
	return CategoryPlain
}

// Palette maps display categories to styles.
type Palette struct {
	directory lipgloss.Style
	source    lipgloss.Style
}

// NewPalette builds the palette for renderer. Directories use directoryColor
// when set and bold blue otherwise.
func NewPalette(renderer *lipgloss.Renderer, directoryColor *config.Color) Palette {
	var directoryForeground lipgloss.TerminalColor = defaultDirectoryColor
	if directoryColor != nil {
		directoryForeground = lipgloss.Color(directoryColor.Hex())
	}
	return Palette{
		directory: renderer.NewStyle().Bold(true).Foreground(directoryForeground).TabWidth(lipgloss.NoTabConversion),
		source:    renderer.NewStyle().Foreground(sourceAccentColor).TabWidth(lipgloss.NoTabConversion),
	}
}

// Render returns name styled for category.
func (palette Palette) Render(category Category, name string) string {
	switch category {
	case CategoryDirectory:
		return palette.directory.Render(name)
	case CategorySource:
		return palette.source.Render(name)
	default:
		return name
	}
}
