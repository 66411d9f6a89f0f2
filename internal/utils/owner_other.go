//go:build !unix

package utils

import "io/fs"

// FileOwnership is not supported on this platform.
func FileOwnership(info fs.FileInfo) (string, string) {
	return unknownOwner, unknownOwner
}
