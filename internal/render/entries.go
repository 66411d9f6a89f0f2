// Package render prints directory listings: the flat listing and the tree diagram.
package render

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/tikrack/peek/internal/config"
	"github.com/tikrack/peek/internal/filter"
	"github.com/tikrack/peek/internal/utils"
)

// Options configures one listing. It is built once per invocation and is read
// only while the listing runs.
type Options struct {
	Filter filter.Predicate
	// MaxDepth limits tree recursion. Nil means unbounded and zero lists only
	// the entries of the root.
	MaxDepth       *uint
	DirectoryColor *config.Color
	// Containers prints directories that miss the pattern but hold matches,
	// and drops those that hold none.
	Containers bool
}

// node is one entry met during a walk.
type node struct {
	path         string
	relativePath string
	name         string
	isDirectory  bool
	info         fs.FileInfo
}

// readDirectory lists the entries of directoryPath sorted by name in byte order.
// Entries whose type cannot be resolved are logged and left out.
func readDirectory(fileSystem afero.Fs, logger *zap.Logger, rootPath string, directoryPath string) ([]node, error) {
	infos, readError := afero.ReadDir(fileSystem, directoryPath)
	if readError != nil {
		return nil, readError
	}
	sort.Slice(infos, func(left, right int) bool {
		return infos[left].Name() < infos[right].Name()
	})

	nodes := make([]node, 0, len(infos))
	for _, info := range infos {
		entryPath := filepath.Join(directoryPath, info.Name())
		isDirectory := info.IsDir()
		if info.Mode()&fs.ModeSymlink != 0 {
			targetInfo, statError := fileSystem.Stat(entryPath)
			if statError != nil {
				logger.Debug(skippedEntryMessage, zap.String(pathField, entryPath), zap.Error(statError))
				continue
			}
			isDirectory = targetInfo.IsDir()
		}
		nodes = append(nodes, node{
			path:         entryPath,
			relativePath: utils.RelativePathOrSelf(entryPath, rootPath),
			name:         info.Name(),
			isDirectory:  isDirectory,
			info:         info,
		})
	}
	return nodes, nil
}

const (
	skippedEntryMessage     = "skipping entry"
	skippedDirectoryMessage = "skipping directory"
	pathField               = "path"
)
