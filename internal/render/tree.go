package render

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	branchMiddle       = "├── "
	branchLast         = "└── "
	continuationMiddle = "│   "
	continuationLast   = "    "

	errorReadRootFormat = "reading directory %s: %w"
	errorWriteFormat    = "writing listing: %w"
)

// TreeRenderer prints a directory as an indented tree, one line per entry.
type TreeRenderer struct {
	fileSystem afero.Fs
	output     io.Writer
	palette    Palette
	options    *Options
	logger     *zap.Logger

	rootPath   string
	writeError error
}

// NewTreeRenderer returns a renderer writing to output.
func NewTreeRenderer(fileSystem afero.Fs, output io.Writer, palette Palette, options *Options, logger *zap.Logger) *TreeRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TreeRenderer{
		fileSystem: fileSystem,
		output:     output,
		palette:    palette,
		options:    options,
		logger:     logger,
	}
}

// Render prints the tree below rootPath. The only error reported is a root that
// cannot be listed, or output that cannot be written. Unreadable entries and
// subdirectories are logged at debug level and left out.
func (renderer *TreeRenderer) Render(rootPath string) error {
	renderer.rootPath = rootPath
	renderer.writeError = nil

	nodes, readError := readDirectory(renderer.fileSystem, renderer.logger, rootPath, rootPath)
	if readError != nil {
		return fmt.Errorf(errorReadRootFormat, rootPath, readError)
	}
	renderer.renderNodes(nodes, "", 0)
	if renderer.writeError != nil {
		return fmt.Errorf(errorWriteFormat, renderer.writeError)
	}
	return nil
}

// renderDirectory prints the contents of directoryPath at depth.
func (renderer *TreeRenderer) renderDirectory(directoryPath string, prefix string, depth uint) {
	if renderer.beyondMaxDepth(depth) {
		return
	}
	nodes, readError := readDirectory(renderer.fileSystem, renderer.logger, renderer.rootPath, directoryPath)
	if readError != nil {
		renderer.logger.Debug(skippedDirectoryMessage, zap.String(pathField, directoryPath), zap.Error(readError))
		return
	}
	renderer.renderNodes(nodes, prefix, depth)
}

// renderNodes prints one directory level. The last slot holder gets the
// closing branch; every directory among them is descended into.
func (renderer *TreeRenderer) renderNodes(nodes []node, prefix string, depth uint) {
	slotHolders := renderer.slotHolders(nodes, depth)
	for index, current := range slotHolders {
		if renderer.writeError != nil {
			return
		}
		branch, continuation := branchMiddle, continuationMiddle
		if index == len(slotHolders)-1 {
			branch, continuation = branchLast, continuationLast
		}
		if renderer.options.Containers || renderer.options.Filter.Matches(current.relativePath, current.name) {
			renderer.writeLine(prefix + branch + renderer.palette.Render(Classify(current.name, current.isDirectory), current.name))
		}
		if current.isDirectory {
			renderer.renderDirectory(current.path, prefix+continuation, depth+1)
		}
	}
}

// slotHolders returns the entries that take a sibling position at this level.
// Hidden and ignored entries never do. Files that miss the pattern never do.
// Directories that miss the pattern always do, unless Containers is set, in
// which case only those holding a match within the depth limit do.
func (renderer *TreeRenderer) slotHolders(nodes []node, depth uint) []node {
	predicate := renderer.options.Filter
	holders := make([]node, 0, len(nodes))
	for _, current := range nodes {
		if predicate.Excluded(current.relativePath, current.name, current.isDirectory) {
			continue
		}
		if !predicate.Matches(current.relativePath, current.name) {
			if !current.isDirectory {
				continue
			}
			if renderer.options.Containers && !renderer.containsMatch(current.path, depth+1) {
				continue
			}
		}
		holders = append(holders, current)
	}
	return holders
}

// containsMatch reports whether directoryPath holds a matching entry that the
// depth limit still allows to be printed.
func (renderer *TreeRenderer) containsMatch(directoryPath string, depth uint) bool {
	if renderer.beyondMaxDepth(depth) {
		return false
	}
	nodes, readError := readDirectory(renderer.fileSystem, renderer.logger, renderer.rootPath, directoryPath)
	if readError != nil {
		return false
	}
	predicate := renderer.options.Filter
	for _, current := range nodes {
		if predicate.Excluded(current.relativePath, current.name, current.isDirectory) {
			continue
		}
		if predicate.Matches(current.relativePath, current.name) {
			return true
		}
		if current.isDirectory && renderer.containsMatch(current.path, depth+1) {
			return true
		}
	}
	return false
}

func (renderer *TreeRenderer) beyondMaxDepth(depth uint) bool {
	return renderer.options.MaxDepth != nil && depth > *renderer.options.MaxDepth
}

func (renderer *TreeRenderer) writeLine(line string) {
	if renderer.writeError != nil {
		return
	}
	if _, err := fmt.Fprintln(renderer.output, line); err != nil {
		renderer.writeError = err
	}
}
