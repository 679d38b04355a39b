package conf

import (
	"fmt"
	"runtime/debug"
)

const Version = "0.1.0"

// GetVersion returns the CLI version with the vcs revision appended when the
// binary carries build info.
func GetVersion() string {
	commitHash := ""
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				commitHash = setting.Value
			}
		}
	}
	return fmt.Sprintf("%s (%s)", Version, commitHash)
}
