package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/tikrack/peek/internal/utils"
)

// Layout selects how the flat listing prints entries.
type Layout int

const (
	// LayoutNames prints all names on a single line.
	LayoutNames Layout = iota
	// LayoutSize prints one entry per line preceded by its size.
	LayoutSize
	// LayoutLong prints one entry per line with permissions, ownership, size and modification time.
	LayoutLong
)

const (
	nameSeparator    = "  "
	sizeLineFormat   = "%8s  %s"
	longLineFormat   = "%s  %-8s %-8s %10s  %16s  %s"
	errorFlushFormat = "writing listing: %w"
)

// FlatRenderer prints the entries of a single directory without descending.
type FlatRenderer struct {
	fileSystem afero.Fs
	output     io.Writer
	palette    Palette
	options    *Options
	logger     *zap.Logger
}

// NewFlatRenderer returns a renderer writing to output.
func NewFlatRenderer(fileSystem afero.Fs, output io.Writer, palette Palette, options *Options, logger *zap.Logger) *FlatRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FlatRenderer{
		fileSystem: fileSystem,
		output:     output,
		palette:    palette,
		options:    options,
		logger:     logger,
	}
}

// Render prints the visible entries of directoryPath using layout.
func (renderer *FlatRenderer) Render(directoryPath string, layout Layout) error {
	nodes, readError := readDirectory(renderer.fileSystem, renderer.logger, directoryPath, directoryPath)
	if readError != nil {
		return fmt.Errorf(errorReadRootFormat, directoryPath, readError)
	}

	var listing strings.Builder
	for _, current := range nodes {
		if !renderer.options.Filter.Visible(current.relativePath, current.name, current.isDirectory) {
			continue
		}
		coloredName := renderer.palette.Render(Classify(current.name, current.isDirectory), current.name)
		switch layout {
		case LayoutSize:
			fmt.Fprintf(&listing, sizeLineFormat+"\n", utils.FormatFileSize(current.info.Size()), coloredName)
		case LayoutLong:
			owner, group := utils.FileOwnership(current.info)
			fmt.Fprintf(&listing, longLineFormat+"\n",
				utils.FormatPermissions(current.info.Mode()),
				owner,
				group,
				utils.FormatFileSize(current.info.Size()),
				utils.FormatTimestamp(current.info.ModTime()),
				coloredName,
			)
		default:
			listing.WriteString(coloredName + nameSeparator)
		}
	}
	if layout == LayoutNames {
		listing.WriteString("\n")
	}

	if _, writeError := io.WriteString(renderer.output, listing.String()); writeError != nil {
		return fmt.Errorf(errorFlushFormat, writeError)
	}
	return nil
}
