package utils

import (
	"runtime/debug"
)

const (
	unknownVersion     = "unknown"
	developmentVersion = "(devel)"
)

// Version is injected at link time with -ldflags "-X github.com/tikrack/peek/internal/utils.Version=v1.2.3".
var Version = EmptyString

// GetApplicationVersion determines the application version. A linker-injected
// Version wins, then the module version recorded by go install.
func GetApplicationVersion() string {
	if Version != EmptyString {
		return Version
	}
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != EmptyString && buildInfo.Main.Version != developmentVersion {
		return buildInfo.Main.Version
	}
	return unknownVersion
}
