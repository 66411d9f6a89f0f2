package utils

import "io/fs"

const permissionColumns = 9

// FormatPermissions renders the type and permission bits of a mode the way ls
// does, for example "drwxr-xr-x" or "-rw-r--r--".
func FormatPermissions(mode fs.FileMode) string {
	permissionString := mode.String()
	// fs.FileMode prints one letter per type bit ("dtrwx..."); keep only the first.
	if len(permissionString) > permissionColumns+1 {
		return permissionString[:1] + permissionString[len(permissionString)-permissionColumns:]
	}
	return permissionString
}
