package core

import "fmt"

// MakeVersion packs a semantic version into a single number,
// 10 bits for major, 10 for minor and 12 for the patch level.
func MakeVersion(major, minor, patch uint32) uint32 {
	var version uint32
	version |= patch & 0xFFF
	version |= (minor & 0x3FF) << 12
	version |= (major & 0x3FF) << 24
	return version
}

// VersionString formats a packed version number for display.
func VersionString(version uint32) string {
	major := (version >> 24) & 0x3FF
	minor := (version >> 12) & 0x3FF
	patch := version & 0xFFF
	return fmt.Sprintf("v%d.%d.%d", major, minor, patch)
}
