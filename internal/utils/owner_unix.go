//go:build unix

package utils

import (
	"io/fs"
	"os/user"
	"strconv"
	"syscall"
)

// FileOwnership returns the owner and group names for the file described by info.
// Numeric identifiers are returned when the names cannot be resolved.
func FileOwnership(info fs.FileInfo) (string, string) {
	statusRecord, isStatusRecord := info.Sys().(*syscall.Stat_t)
	if !isStatusRecord || statusRecord == nil {
		return unknownOwner, unknownOwner
	}
	userIdentifier := strconv.FormatUint(uint64(statusRecord.Uid), 10)
	groupIdentifier := strconv.FormatUint(uint64(statusRecord.Gid), 10)

	ownerName := userIdentifier
	if resolvedUser, lookupError := user.LookupId(userIdentifier); lookupError == nil {
		ownerName = resolvedUser.Username
	}
	groupName := groupIdentifier
	if resolvedGroup, lookupError := user.LookupGroupId(groupIdentifier); lookupError == nil {
		groupName = resolvedGroup.Name
	}
	return ownerName, groupName
}
